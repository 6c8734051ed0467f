package storages

import (
	"context"
	"errors"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/pal/modes"
)

func testScope(t *testing.T) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() DBPath {
			return ":memory:"
		},
	)
}

func TestInTxCommit(t *testing.T) {
	testScope(t).Call(func(
		db DB,
	) {
		ctx := context.Background()
		err := InTx(ctx, db, func(tx Tx) error {
			_, err := tx.Exec(ctx,
				`insert into chats (id, title, created_at, body) values (?, ?, ?, ?)`,
				"a", "first", 1, "hello",
			)
			return err
		})
		if err != nil {
			t.Fatal(err)
		}

		var n int
		if err := db.QueryRowContext(ctx, `select count(*) from chats`).Scan(&n); err != nil {
			t.Fatal(err)
		}
		if n != 1 {
			t.Fatalf("got %v", n)
		}
	})
}

func TestInTxRollback(t *testing.T) {
	testScope(t).Call(func(
		db DB,
	) {
		ctx := context.Background()
		boom := errors.New("boom")
		err := InTx(ctx, db, func(tx Tx) error {
			_, err := tx.Exec(ctx,
				`insert into chats (id, title, created_at, body) values (?, ?, ?, ?)`,
				"a", "first", 1, "hello",
			)
			if err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("got %v", err)
		}

		var n int
		if err := db.QueryRowContext(ctx, `select count(*) from chats`).Scan(&n); err != nil {
			t.Fatal(err)
		}
		if n != 0 {
			t.Fatalf("got %v", n)
		}
	})
}
