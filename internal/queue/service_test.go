package queue

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"arcade_queue/internal/models"
	"arcade_queue/internal/testsupport"
)

type notification struct {
	kind     string
	cabinets []uint
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []notification
}

func (r *recordingNotifier) Notify(_ context.Context, kind string, cabinetIDs ...uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, notification{kind: kind, cabinets: cabinetIDs})
}

func (r *recordingNotifier) last() notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return notification{}
	}
	return r.events[len(r.events)-1]
}

func newTestService(t *testing.T) (*Service, *gorm.DB, *recordingNotifier) {
	t.Helper()
	db := testsupport.NewDB(t)
	rec := &recordingNotifier{}
	return NewService(db, rec), db, rec
}

func positionOf(t *testing.T, db *gorm.DB, id uint) models.QueueEntry {
	t.Helper()
	var e models.QueueEntry
	require.NoError(t, db.First(&e, id).Error)
	return e
}

func cabinetQueue(t *testing.T, svc *Service, cabinetID uint) []models.QueueEntry {
	t.Helper()
	cabinets, err := svc.ListCabinets(context.Background())
	require.NoError(t, err)
	for _, c := range cabinets {
		if c.ID == cabinetID {
			return c.QueueItems
		}
	}
	t.Fatalf("cabinet %d not listed", cabinetID)
	return nil
}

func TestCreateEntry_AppendsInCreationOrder(t *testing.T) {
	svc, _, rec := newTestService(t)
	ctx := context.Background()
	cab, err := svc.CreateCabinet(ctx, "Pac-Man")
	require.NoError(t, err)

	solo, err := svc.CreateEntry(ctx, CreateEntryInput{CabinetID: cab.ID, Type: models.EntryTypeSolo, Players: []string{"Alice"}})
	require.NoError(t, err)
	duo, err := svc.CreateEntry(ctx, CreateEntryInput{CabinetID: cab.ID, Type: models.EntryTypeDuo, Players: []string{"Bob", "Cara"}})
	require.NoError(t, err)

	assert.Equal(t, 1, solo.Position)
	assert.Equal(t, 2, duo.Position)
	assert.Equal(t, notification{kind: EventEntryCreated, cabinets: []uint{cab.ID}}, rec.last())

	q := cabinetQueue(t, svc, cab.ID)
	require.Len(t, q, 2)
	assert.Equal(t, solo.ID, q[0].ID)
	assert.Equal(t, duo.ID, q[1].ID)
	assert.Equal(t, []string{"Bob", "Cara"}, []string(q[1].Players))
}

func TestCreateEntry_UsesMaxPlusOneWithGaps(t *testing.T) {
	svc, db, _ := newTestService(t)
	cab := testsupport.SeedCabinet(t, db, "Tekken")
	testsupport.SeedEntry(t, db, cab.ID, 5, "A")
	testsupport.SeedEntry(t, db, cab.ID, 9, "B")

	other := testsupport.SeedCabinet(t, db, "Galaga")
	testsupport.SeedEntry(t, db, other.ID, 40, "Z")

	e, err := svc.CreateEntry(context.Background(), CreateEntryInput{CabinetID: cab.ID, Type: models.EntryTypeSolo, Players: []string{"C"}})
	require.NoError(t, err)
	assert.Equal(t, 10, e.Position, "other cabinets' positions must not count")
}

func TestCreateEntry_Validation(t *testing.T) {
	svc, db, rec := newTestService(t)
	cab := testsupport.SeedCabinet(t, db, "DDR")
	ctx := context.Background()

	cases := map[string]CreateEntryInput{
		"unknown type":      {CabinetID: cab.ID, Type: "trio", Players: []string{"a", "b", "c"}},
		"solo with two":     {CabinetID: cab.ID, Type: models.EntryTypeSolo, Players: []string{"a", "b"}},
		"duo with one":      {CabinetID: cab.ID, Type: models.EntryTypeDuo, Players: []string{"a"}},
		"blank name":        {CabinetID: cab.ID, Type: models.EntryTypeDuo, Players: []string{"a", "   "}},
		"missing cabinet":   {CabinetID: cab.ID + 100, Type: models.EntryTypeSolo, Players: []string{"a"}},
		"no players at all": {CabinetID: cab.ID, Type: models.EntryTypeSolo},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CreateEntry(ctx, in)
			require.Error(t, err)
			assert.True(t, IsValidation(err), "want ValidationError, got %v", err)
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.QueueEntry{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Empty(t, rec.events)
}

func TestCreateEntry_TrimsNames(t *testing.T) {
	svc, db, _ := newTestService(t)
	cab := testsupport.SeedCabinet(t, db, "DDR")

	e, err := svc.CreateEntry(context.Background(), CreateEntryInput{CabinetID: cab.ID, Type: models.EntryTypeDuo, Players: []string{"  Bob ", "Cara\n"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Bob", "Cara"}, []string(positionOf(t, db, e.ID).Players))
}

func TestCreateEntry_NameLimitCountsCharacters(t *testing.T) {
	svc, db, _ := newTestService(t)
	cab := testsupport.SeedCabinet(t, db, "DDR")
	ctx := context.Background()

	long := strings.Repeat("é", 200)
	e, err := svc.CreateEntry(ctx, CreateEntryInput{CabinetID: cab.ID, Type: models.EntryTypeSolo, Players: []string{long}})
	require.NoError(t, err)
	assert.Equal(t, []string{long}, []string(positionOf(t, db, e.ID).Players))

	_, err = svc.CreateEntry(ctx, CreateEntryInput{CabinetID: cab.ID, Type: models.EntryTypeSolo, Players: []string{strings.Repeat("é", maxNameLength)}})
	require.NoError(t, err)

	_, err = svc.CreateEntry(ctx, CreateEntryInput{CabinetID: cab.ID, Type: models.EntryTypeSolo, Players: []string{strings.Repeat("é", maxNameLength+1)}})
	assert.True(t, IsValidation(err), "want ValidationError, got %v", err)
}

func TestCycle_MovesCurrentSessionToBack(t *testing.T) {
	svc, db, rec := newTestService(t)
	cab := testsupport.SeedCabinet(t, db, "Street Fighter")
	first := testsupport.SeedEntry(t, db, cab.ID, 1, "A")
	second := testsupport.SeedEntry(t, db, cab.ID, 2, "B")
	third := testsupport.SeedEntry(t, db, cab.ID, 3, "C")

	require.NoError(t, svc.Cycle(context.Background(), first.ID))

	assert.Equal(t, 4, positionOf(t, db, first.ID).Position)
	q := cabinetQueue(t, svc, cab.ID)
	require.Len(t, q, 3)
	assert.Equal(t, []uint{second.ID, third.ID, first.ID}, []uint{q[0].ID, q[1].ID, q[2].ID})
	assert.Equal(t, notification{kind: EventEntryCycled, cabinets: []uint{cab.ID}}, rec.last())
}

func TestCycle_SoleEntryStillIncrements(t *testing.T) {
	svc, db, _ := newTestService(t)
	cab := testsupport.SeedCabinet(t, db, "Pinball")
	only := testsupport.SeedEntry(t, db, cab.ID, 3, "A")

	require.NoError(t, svc.Cycle(context.Background(), only.ID))
	assert.Equal(t, 4, positionOf(t, db, only.ID).Position)
}

func TestCycle_MissingEntryIsNoop(t *testing.T) {
	svc, _, rec := newTestService(t)
	assert.NoError(t, svc.Cycle(context.Background(), 999))
	assert.Empty(t, rec.events)
}

func TestMove_AppendsToTargetCabinet(t *testing.T) {
	svc, db, rec := newTestService(t)
	src := testsupport.SeedCabinet(t, db, "Pac-Man")
	dst := testsupport.SeedCabinet(t, db, "Galaga")
	mover := testsupport.SeedEntry(t, db, src.ID, 1, "A")
	testsupport.SeedEntry(t, db, src.ID, 2, "B")
	testsupport.SeedEntry(t, db, dst.ID, 7, "X")

	require.NoError(t, svc.Move(context.Background(), mover.ID, dst.ID))

	got := positionOf(t, db, mover.ID)
	assert.Equal(t, dst.ID, got.CabinetID)
	assert.Equal(t, 8, got.Position)

	for _, e := range cabinetQueue(t, svc, src.ID) {
		assert.NotEqual(t, mover.ID, e.ID, "moved entry must leave its old cabinet")
	}
	assert.Equal(t, notification{kind: EventEntryMoved, cabinets: []uint{src.ID, dst.ID}}, rec.last())
}

func TestMove_EmptyTargetStartsAtOne(t *testing.T) {
	svc, db, _ := newTestService(t)
	src := testsupport.SeedCabinet(t, db, "Pac-Man")
	dst := testsupport.SeedCabinet(t, db, "Galaga")
	mover := testsupport.SeedEntry(t, db, src.ID, 12, "A")

	require.NoError(t, svc.Move(context.Background(), mover.ID, dst.ID))
	assert.Equal(t, 1, positionOf(t, db, mover.ID).Position)
}

func TestMove_SameCabinetNotifiesOnce(t *testing.T) {
	svc, db, rec := newTestService(t)
	cab := testsupport.SeedCabinet(t, db, "Pac-Man")
	mover := testsupport.SeedEntry(t, db, cab.ID, 1, "A")
	testsupport.SeedEntry(t, db, cab.ID, 2, "B")

	require.NoError(t, svc.Move(context.Background(), mover.ID, cab.ID))

	assert.Equal(t, 3, positionOf(t, db, mover.ID).Position)
	assert.Equal(t, notification{kind: EventEntryMoved, cabinets: []uint{cab.ID}}, rec.last())
}

func TestMove_MissingIdsAreNoops(t *testing.T) {
	svc, db, rec := newTestService(t)
	src := testsupport.SeedCabinet(t, db, "Pac-Man")
	e := testsupport.SeedEntry(t, db, src.ID, 1, "A")

	assert.NoError(t, svc.Move(context.Background(), 999, src.ID))
	assert.NoError(t, svc.Move(context.Background(), e.ID, 999))

	got := positionOf(t, db, e.ID)
	assert.Equal(t, src.ID, got.CabinetID)
	assert.Equal(t, 1, got.Position)
	assert.Empty(t, rec.events)
}

func TestUpdatePlayers(t *testing.T) {
	svc, db, _ := newTestService(t)
	cab := testsupport.SeedCabinet(t, db, "Tekken")
	duo := testsupport.SeedEntry(t, db, cab.ID, 1, "Bob", "Cara")
	ctx := context.Background()

	updated, err := svc.UpdatePlayers(ctx, duo.ID, []string{"Bob", "Dana"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Bob", "Dana"}, []string(updated.Players))
	stored := positionOf(t, db, duo.ID)
	assert.Equal(t, []string{"Bob", "Dana"}, []string(stored.Players))
	assert.Equal(t, models.EntryTypeDuo, stored.Type)
	assert.Equal(t, 1, stored.Position)

	_, err = svc.UpdatePlayers(ctx, duo.ID, []string{"Solo now"})
	assert.True(t, IsValidation(err), "type is fixed, count must match")

	_, err = svc.UpdatePlayers(ctx, 999, []string{"X"})
	assert.True(t, errors.Is(err, ErrEntryNotFound))
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDeleteEntry_Idempotent(t *testing.T) {
	svc, db, rec := newTestService(t)
	cab := testsupport.SeedCabinet(t, db, "Tekken")
	e := testsupport.SeedEntry(t, db, cab.ID, 1, "A")
	ctx := context.Background()

	require.NoError(t, svc.DeleteEntry(ctx, e.ID))
	assert.Equal(t, notification{kind: EventEntryDeleted, cabinets: []uint{cab.ID}}, rec.last())
	assert.NoError(t, svc.DeleteEntry(ctx, e.ID), "second delete must also succeed")
	assert.Len(t, rec.events, 1)

	var count int64
	require.NoError(t, db.Model(&models.QueueEntry{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListEntries_SortedWithCabinet(t *testing.T) {
	svc, db, _ := newTestService(t)
	a := testsupport.SeedCabinet(t, db, "A")
	b := testsupport.SeedCabinet(t, db, "B")
	e3 := testsupport.SeedEntry(t, db, a.ID, 3, "three")
	e1 := testsupport.SeedEntry(t, db, b.ID, 1, "one")
	e2 := testsupport.SeedEntry(t, db, a.ID, 2, "two")

	entries, err := svc.ListEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []uint{e1.ID, e2.ID, e3.ID}, []uint{entries[0].ID, entries[1].ID, entries[2].ID})
	require.NotNil(t, entries[0].Cabinet)
	assert.Equal(t, "B", entries[0].Cabinet.Name)
}

func TestResetAll(t *testing.T) {
	svc, db, rec := newTestService(t)
	a := testsupport.SeedCabinet(t, db, "A")
	testsupport.SeedEntry(t, db, a.ID, 1, "one")
	testsupport.SeedEntry(t, db, a.ID, 2, "two")

	n, err := svc.ResetAll(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	assert.Equal(t, EventQueuesReset, rec.last().kind)

	cabinets, err := svc.ListCabinets(context.Background())
	require.NoError(t, err)
	require.Len(t, cabinets, 1, "cabinets survive a reset")
	assert.Empty(t, cabinets[0].QueueItems)
}
