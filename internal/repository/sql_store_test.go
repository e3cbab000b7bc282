package repository_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/alexanderramin/timecard/internal/db"
	"github.com/alexanderramin/timecard/internal/domain"
	"github.com/alexanderramin/timecard/internal/repository"
	"github.com/alexanderramin/timecard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLStore_UpdateRollsBackOnEntryInsertFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	store := repository.NewSQLStore(database, db.DialectSQLite, nil)

	emp := seedEmployee(t, store, "Ada")
	tc := testutil.NewTestTimecard(emp.ID, testutil.Week(2024, 3, 4),
		testutil.WithEntries(
			testutil.Entry("Monday", "08:00", "12:00"),
			testutil.Entry("Tuesday", "08:00", "10:00"),
		))
	require.NoError(t, createCard(t, store, tc))

	// The card row and the entry delete succeed; the first entry insert fails.
	injected := errors.New("disk full")
	failing := repository.NewSQLStore(database, db.DialectSQLite, &testutil.FailingExecUoW{
		DB: database, Match: "INSERT INTO timecard_entries", FailOn: 1, Err: injected,
	})

	require.NoError(t, tc.ReplaceEntries([]domain.EntryDraft{
		testutil.Entry("Friday", "09:00", "17:00"),
	}, tc.UpdatedAt))
	err := failing.WithinTx(context.Background(), func(ctx context.Context, r repository.Repos) error {
		return r.Timecards.Update(ctx, tc)
	})
	require.ErrorIs(t, err, injected)

	got, err := getCard(t, store, tc.ID)
	require.NoError(t, err)
	require.Len(t, got.Entries, 2, "entries must survive a failed rewrite")
	assert.Equal(t, domain.Monday, got.Entries[0].Day)
	assert.Equal(t, 6.0, got.TotalHours)
}

func TestSQLStore_ConcurrentCreateSameWeek(t *testing.T) {
	store := testutil.NewFileSQLStore(t)
	emp := seedEmployee(t, store, "Ada")
	week := testutil.Week(2024, 3, 4)

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = store.WithinTx(context.Background(), func(ctx context.Context, r repository.Repos) error {
				return r.Timecards.Create(ctx, testutil.NewTestTimecard(emp.ID, week))
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrDuplicateWeek)
	}
	assert.Equal(t, 1, succeeded)
	assert.Len(t, listCards(t, store, emp.ID, 0), 1)
}

func TestSQLStore_ConcurrentCreateAssignsDistinctSeq(t *testing.T) {
	store := testutil.NewFileSQLStore(t)

	const workers = 6
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		emp := seedEmployee(t, store, fmt.Sprintf("Worker %d", i))
		wg.Add(1)
		go func(employeeID string) {
			defer wg.Done()
			err := createCard(t, store, testutil.NewTestTimecard(employeeID, testutil.Week(2024, 3, 4)))
			assert.NoError(t, err)
		}(emp.ID)
	}
	wg.Wait()

	seen := map[int64]bool{}
	err := store.Read(context.Background(), func(ctx context.Context, r repository.Repos) error {
		employees, err := r.Employees.List(ctx)
		if err != nil {
			return err
		}
		for _, e := range employees {
			cards, err := r.Timecards.ListByEmployee(ctx, e.ID, 0)
			if err != nil {
				return err
			}
			for _, c := range cards {
				assert.False(t, seen[c.Seq], "seq %d assigned twice", c.Seq)
				seen[c.Seq] = true
			}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, seen, workers)
}
