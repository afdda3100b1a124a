package service

import (
	"context"
	"testing"
	"time"

	"github.com/critmass/availability-bot/internal/database"
	"github.com/critmass/availability-bot/internal/domain"
	"github.com/critmass/availability-bot/internal/domain/contract"
	"github.com/critmass/availability-bot/internal/domain/dates"
	"github.com/critmass/availability-bot/internal/domain/entity"
	"github.com/critmass/availability-bot/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const testChannel = "C123456789"

func newTestService(t *testing.T) (*availabilityService, *mocks.MockSlackClient, contract.DataManager) {
	t.Helper()

	db := database.SetupTestDB(t)
	t.Cleanup(func() { database.CleanupTestDB(t, db) })

	ctrl := gomock.NewController(t)
	slackClient := mocks.NewMockSlackClient(ctrl)

	dm := database.NewInstance(db)
	svc := newAvailability(dm, slackClient, dates.NewParser(), zap.NewNop())

	return svc, slackClient, dm
}

func loadTestScope(t *testing.T, svc *availabilityService) {
	t.Helper()
	require.NoError(t, svc.LoadScope(context.Background(), testChannel, "test-channel"))
}

func testUser(id, name string) entity.User {
	return entity.User{SlackUserID: id, UserName: name, DisplayName: name}
}

func futureDate(daysAhead int) entity.Date {
	return entity.Today().AddDays(daysAhead)
}

func TestAvailabilityService_AddAndQuery(t *testing.T) {
	svc, _, _ := newTestService(t)
	loadTestScope(t, svc)
	ctx := context.Background()

	friday := futureDate(3)
	saturday := futureDate(4)

	result, err := svc.AddAvailability(ctx, testChannel, testUser("U1", "alice"), []entity.Date{friday, saturday})
	require.NoError(t, err)
	require.NoError(t, result.SaveErr)
	assert.Nil(t, result.Alert, "default threshold should never alert")
	assert.Equal(t, []entity.Date{friday, saturday}, result.Dates)

	rosters, err := svc.QueryAvailability(testChannel, nil)
	require.NoError(t, err)
	require.Len(t, rosters, 2)
	assert.Equal(t, friday, rosters[0].Date)
	assert.Equal(t, []string{"alice"}, rosters[0].Names)
}

func TestAvailabilityService_AddIsIdempotent(t *testing.T) {
	svc, _, _ := newTestService(t)
	loadTestScope(t, svc)
	ctx := context.Background()

	friday := futureDate(3)
	user := testUser("U1", "alice")

	_, err := svc.AddAvailability(ctx, testChannel, user, []entity.Date{friday})
	require.NoError(t, err)
	_, err = svc.AddAvailability(ctx, testChannel, user, []entity.Date{friday})
	require.NoError(t, err)

	rosters, err := svc.QueryAvailability(testChannel, nil)
	require.NoError(t, err)
	require.Len(t, rosters, 1)
	assert.Equal(t, []string{"alice"}, rosters[0].Names)
}

func TestAvailabilityService_AddThenRemoveRestoresStore(t *testing.T) {
	svc, _, _ := newTestService(t)
	loadTestScope(t, svc)
	ctx := context.Background()

	dateList := []entity.Date{futureDate(1), futureDate(2)}
	user := testUser("U1", "alice")

	_, err := svc.AddAvailability(ctx, testChannel, user, dateList)
	require.NoError(t, err)
	_, err = svc.RemoveAvailability(ctx, testChannel, user, dateList)
	require.NoError(t, err)

	rosters, err := svc.QueryAvailability(testChannel, nil)
	require.NoError(t, err)
	assert.Empty(t, rosters, "emptied date entries must be deleted, not left as empty rows")

	st, ok := svc.registry.get(testChannel)
	require.True(t, ok)
	assert.Empty(t, st.avail, "no stale empty entries in the store")
}

func TestAvailabilityService_RemoveAbsentUserIsNoOp(t *testing.T) {
	svc, _, _ := newTestService(t)
	loadTestScope(t, svc)
	ctx := context.Background()

	result, err := svc.RemoveAvailability(ctx, testChannel, testUser("U9", "nobody"), []entity.Date{futureDate(1)})
	require.NoError(t, err)
	require.NoError(t, result.SaveErr)
	assert.Nil(t, result.Alert)
}

func TestAvailabilityService_RemoveAllSentinel(t *testing.T) {
	svc, _, _ := newTestService(t)
	loadTestScope(t, svc)
	ctx := context.Background()

	alice := testUser("U1", "alice")
	bob := testUser("U2", "bob")

	_, err := svc.AddAvailability(ctx, testChannel, alice, []entity.Date{futureDate(1), futureDate(2), futureDate(5)})
	require.NoError(t, err)
	_, err = svc.AddAvailability(ctx, testChannel, bob, []entity.Date{futureDate(2)})
	require.NoError(t, err)

	result, err := svc.RemoveAvailability(ctx, testChannel, alice, nil)
	require.NoError(t, err)
	assert.Len(t, result.Dates, 3, "all sentinel resolves to every date the user appears on")

	rosters, err := svc.QueryAvailability(testChannel, nil)
	require.NoError(t, err)
	require.Len(t, rosters, 1)
	assert.Equal(t, futureDate(2), rosters[0].Date)
	assert.Equal(t, []string{"bob"}, rosters[0].Names)
}

func TestAvailabilityService_ToggleIsItsOwnInverse(t *testing.T) {
	svc, _, _ := newTestService(t)
	loadTestScope(t, svc)
	ctx := context.Background()

	friday := futureDate(3)
	user := testUser("U1", "alice")

	before, err := svc.QueryAvailability(testChannel, nil)
	require.NoError(t, err)
	statusBefore, err := svc.ScopeStatus(testChannel)
	require.NoError(t, err)

	_, err = svc.ToggleAvailability(ctx, testChannel, user, friday)
	require.NoError(t, err)

	mid, err := svc.QueryAvailability(testChannel, nil)
	require.NoError(t, err)
	require.Len(t, mid, 1)
	assert.Equal(t, []string{"alice"}, mid[0].Names)

	_, err = svc.ToggleAvailability(ctx, testChannel, user, friday)
	require.NoError(t, err)

	after, err := svc.QueryAvailability(testChannel, nil)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	statusAfter, err := svc.ScopeStatus(testChannel)
	require.NoError(t, err)
	assert.Equal(t, statusBefore.Reached, statusAfter.Reached)
}

func TestAvailabilityService_CriticalMassScenario(t *testing.T) {
	svc, slackClient, _ := newTestService(t)
	loadTestScope(t, svc)
	ctx := context.Background()

	friday := futureDate(3)
	alice := testUser("U1", "alice")
	bob := testUser("U2", "bob")
	carol := testUser("U3", "carol")

	_, err := svc.SetThreshold(ctx, testChannel, 2)
	require.NoError(t, err)

	// Crossing the threshold fires exactly one alert.
	slackClient.EXPECT().PostMessage(testChannel, gomock.Any()).Return(testChannel, "1.1", nil).Times(1)

	result, err := svc.AddAvailability(ctx, testChannel, alice, []entity.Date{friday})
	require.NoError(t, err)
	assert.Nil(t, result.Alert)

	result, err = svc.AddAvailability(ctx, testChannel, bob, []entity.Date{friday})
	require.NoError(t, err)
	require.NotNil(t, result.Alert)
	assert.True(t, result.Alert.Reached)
	assert.Equal(t, []entity.Date{friday}, result.Alert.Dates)

	// A third user while latched: no further alert.
	result, err = svc.AddAvailability(ctx, testChannel, carol, []entity.Date{friday})
	require.NoError(t, err)
	assert.Nil(t, result.Alert)

	// Dropping to 2 keeps the latch (still at threshold).
	result, err = svc.RemoveAvailability(ctx, testChannel, alice, []entity.Date{friday})
	require.NoError(t, err)
	assert.Nil(t, result.Alert)

	// Dropping below fires exactly one falling alert.
	slackClient.EXPECT().PostMessage(testChannel, gomock.Any()).Return(testChannel, "1.2", nil).Times(1)

	result, err = svc.RemoveAvailability(ctx, testChannel, bob, []entity.Date{friday})
	require.NoError(t, err)
	require.NotNil(t, result.Alert)
	assert.False(t, result.Alert.Reached)

	status, err := svc.ScopeStatus(testChannel)
	require.NoError(t, err)
	assert.False(t, status.Reached)
}

func TestAvailabilityService_OneAlertForSimultaneousCrossings(t *testing.T) {
	svc, slackClient, _ := newTestService(t)
	loadTestScope(t, svc)
	ctx := context.Background()

	d1, d2 := futureDate(1), futureDate(2)
	alice := testUser("U1", "alice")
	bob := testUser("U2", "bob")

	_, err := svc.SetThreshold(ctx, testChannel, 2)
	require.NoError(t, err)

	_, err = svc.AddAvailability(ctx, testChannel, alice, []entity.Date{d1, d2})
	require.NoError(t, err)

	// Both dates cross in one batch: one alert listing both, ascending.
	slackClient.EXPECT().PostMessage(testChannel, gomock.Any()).Return(testChannel, "1.1", nil).Times(1)

	result, err := svc.AddAvailability(ctx, testChannel, bob, []entity.Date{d1, d2})
	require.NoError(t, err)
	require.NotNil(t, result.Alert)
	assert.Equal(t, []entity.Date{d1, d2}, result.Alert.Dates)
}

func TestAvailabilityService_SetThresholdTriggersReEvaluation(t *testing.T) {
	svc, slackClient, _ := newTestService(t)
	loadTestScope(t, svc)
	ctx := context.Background()

	friday := futureDate(3)
	_, err := svc.AddAvailability(ctx, testChannel, testUser("U1", "alice"), []entity.Date{friday})
	require.NoError(t, err)

	// Lowering the threshold to 1 makes friday qualify immediately.
	slackClient.EXPECT().PostMessage(testChannel, gomock.Any()).Return(testChannel, "1.1", nil).Times(1)

	result, err := svc.SetThreshold(ctx, testChannel, 1)
	require.NoError(t, err)
	require.NotNil(t, result.Alert)
	assert.True(t, result.Alert.Reached)

	// Raising it back above the count drops the latch again.
	slackClient.EXPECT().PostMessage(testChannel, gomock.Any()).Return(testChannel, "1.2", nil).Times(1)

	result, err = svc.SetThreshold(ctx, testChannel, 5)
	require.NoError(t, err)
	require.NotNil(t, result.Alert)
	assert.False(t, result.Alert.Reached)
}

func TestAvailabilityService_SetThresholdRejectsNonPositive(t *testing.T) {
	svc, _, _ := newTestService(t)
	loadTestScope(t, svc)
	ctx := context.Background()

	_, err := svc.SetThreshold(ctx, testChannel, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidThreshold)

	status, err := svc.ScopeStatus(testChannel)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultThreshold, status.Threshold, "prior threshold unchanged")
}

func TestAvailabilityService_UnknownScope(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddAvailability(ctx, "CUNKNOWN", testUser("U1", "alice"), []entity.Date{futureDate(1)})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownScope)

	err = svc.UnloadScope(ctx, "CUNKNOWN", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownScope)
}

func TestAvailabilityService_PersistenceRoundTrip(t *testing.T) {
	svc, slackClient, dm := newTestService(t)
	loadTestScope(t, svc)
	ctx := context.Background()

	friday := futureDate(3)
	saturday := futureDate(4)

	_, err := svc.SetThreshold(ctx, testChannel, 3)
	require.NoError(t, err)
	_, err = svc.AddAvailability(ctx, testChannel, testUser("U1", "alice"), []entity.Date{friday, saturday})
	require.NoError(t, err)
	_, err = svc.AddAvailability(ctx, testChannel, testUser("U2", "bob"), []entity.Date{friday})
	require.NoError(t, err)

	want, err := svc.QueryAvailability(testChannel, nil)
	require.NoError(t, err)

	// A fresh service over the same database simulates a restart.
	restarted := newAvailability(dm, slackClient, dates.NewParser(), zap.NewNop())
	require.NoError(t, restarted.LoadScope(ctx, testChannel, "test-channel"))

	got, err := restarted.QueryAvailability(testChannel, nil)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	status, err := restarted.ScopeStatus(testChannel)
	require.NoError(t, err)
	assert.Equal(t, 3, status.Threshold)
	assert.False(t, status.Reached)
}

func TestAvailabilityService_LoadDropsPastDates(t *testing.T) {
	svc, slackClient, dm := newTestService(t)
	loadTestScope(t, svc)

	st, ok := svc.registry.get(testChannel)
	require.True(t, ok)

	// Seed the snapshot with only past dates, bypassing the service.
	past := entity.Today().AddDays(-2)
	err := dm.Availability().Insert(&entity.AvailabilityRow{
		ScopeID:     st.id,
		Date:        past,
		SlackUserID: "U1",
		UserName:    "alice",
	})
	require.NoError(t, err)

	restarted := newAvailability(dm, slackClient, dates.NewParser(), zap.NewNop())
	require.NoError(t, restarted.LoadScope(context.Background(), testChannel, "test-channel"))

	rosters, err := restarted.QueryAvailability(testChannel, nil)
	require.NoError(t, err)
	assert.Empty(t, rosters, "past dates are not resurrected")
}

func TestAvailabilityService_LoadScopeIsIdempotent(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.LoadScope(ctx, testChannel, "test-channel"))
	_, err := svc.AddAvailability(ctx, testChannel, testUser("U1", "alice"), []entity.Date{futureDate(1)})
	require.NoError(t, err)

	// A second load must not wipe in-memory state.
	require.NoError(t, svc.LoadScope(ctx, testChannel, "test-channel"))

	rosters, err := svc.QueryAvailability(testChannel, nil)
	require.NoError(t, err)
	assert.Len(t, rosters, 1)
}

func TestAvailabilityService_RestoreScopes(t *testing.T) {
	svc, slackClient, dm := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.LoadScope(ctx, "C1", "one"))
	require.NoError(t, svc.LoadScope(ctx, "C2", "two"))
	_, err := svc.AddAvailability(ctx, "C1", testUser("U1", "alice"), []entity.Date{futureDate(1)})
	require.NoError(t, err)

	restarted := newAvailability(dm, slackClient, dates.NewParser(), zap.NewNop())
	require.NoError(t, restarted.RestoreScopes(ctx))

	rosters, err := restarted.QueryAvailability("C1", nil)
	require.NoError(t, err)
	assert.Len(t, rosters, 1)

	_, err = restarted.QueryAvailability("C2", nil)
	require.NoError(t, err)
}

func TestAvailabilityService_UnloadScopePurgesSnapshot(t *testing.T) {
	svc, slackClient, dm := newTestService(t)
	loadTestScope(t, svc)
	ctx := context.Background()

	_, err := svc.AddAvailability(ctx, testChannel, testUser("U1", "alice"), []entity.Date{futureDate(1)})
	require.NoError(t, err)

	require.NoError(t, svc.UnloadScope(ctx, testChannel, true))

	scope, err := dm.Scope().GetByChannelID(testChannel)
	require.NoError(t, err)
	assert.Nil(t, scope, "purged scope row should be gone")

	// A reload after the purge starts from scratch.
	restarted := newAvailability(dm, slackClient, dates.NewParser(), zap.NewNop())
	require.NoError(t, restarted.LoadScope(ctx, testChannel, "test-channel"))

	rosters, err := restarted.QueryAvailability(testChannel, nil)
	require.NoError(t, err)
	assert.Empty(t, rosters)
}

func TestAvailabilityService_ScopesDoNotShareState(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.LoadScope(ctx, "C1", "one"))
	require.NoError(t, svc.LoadScope(ctx, "C2", "two"))

	_, err := svc.AddAvailability(ctx, "C1", testUser("U1", "alice"), []entity.Date{futureDate(1)})
	require.NoError(t, err)

	rosters, err := svc.QueryAvailability("C2", nil)
	require.NoError(t, err)
	assert.Empty(t, rosters)
}

func TestAvailabilityService_QueryOmitsEmptyDates(t *testing.T) {
	svc, _, _ := newTestService(t)
	loadTestScope(t, svc)
	ctx := context.Background()

	friday := futureDate(3)
	_, err := svc.AddAvailability(ctx, testChannel, testUser("U1", "alice"), []entity.Date{friday})
	require.NoError(t, err)

	rosters, err := svc.QueryAvailability(testChannel, []entity.Date{futureDate(1), friday, futureDate(9)})
	require.NoError(t, err)
	require.Len(t, rosters, 1, "dates with nobody available are omitted, not rendered empty")
	assert.Equal(t, friday, rosters[0].Date)
}

func TestEvaluateCriticalMass(t *testing.T) {
	d1 := entity.NewDate(2026, time.September, 4)
	d2 := entity.NewDate(2026, time.September, 5)

	avail := map[entity.Date]map[string]entity.User{
		d2: {"U1": testUser("U1", "alice"), "U2": testUser("U2", "bob")},
		d1: {"U1": testUser("U1", "alice"), "U2": testUser("U2", "bob")},
	}

	reached, crossing := evaluateCriticalMass(avail, 2)
	assert.True(t, reached)
	assert.Equal(t, []entity.Date{d1, d2}, crossing, "crossing dates sorted ascending")

	reached, crossing = evaluateCriticalMass(avail, 3)
	assert.False(t, reached)
	assert.Empty(t, crossing)

	reached, _ = evaluateCriticalMass(map[entity.Date]map[string]entity.User{}, 1)
	assert.False(t, reached)
}
