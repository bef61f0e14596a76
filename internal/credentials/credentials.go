// Package credentials verifies username/password pairs against a credentials
// source. Every source fails closed: when it cannot be read, nothing verifies.
package credentials

import (
	"bufio"
	"context"
	"crypto/subtle"
	"errors"
	"io"
	"strings"
)

const delimiter = ":"

var (
	_ Verifier = (Table)(nil)
	_ Verifier = (*FileStore)(nil)
	_ Verifier = (*PostgresStore)(nil)
)

type Verifier interface {
	Verify(ctx context.Context, username, password string) bool
}

// Table maps usernames to plain text passwords.
type Table map[string]string

// Verify reports whether username exists and its password matches exactly.
func (t Table) Verify(_ context.Context, username, password string) bool {
	stored, ok := t[username]
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

// ParseTable reads username:password records, one per line, of any length.
// Lines are trimmed, split on the first delimiter only, and skipped when there
// is no delimiter. Later duplicates win. On a read error the partially read
// table is returned together with the error.
func ParseTable(r io.Reader) (Table, error) {
	table := Table{}
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if username, password, found := strings.Cut(strings.TrimSpace(line), delimiter); found {
			table[username] = password
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return table, nil
			}
			return table, err
		}
	}
}
