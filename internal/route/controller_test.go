package route

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sign-keeper/internal/logger"
	"github.com/MKhiriev/go-sign-keeper/internal/mock"
	"github.com/MKhiriev/go-sign-keeper/internal/session"
	"github.com/MKhiriev/go-sign-keeper/internal/store"
	"github.com/MKhiriev/go-sign-keeper/models"
)

const (
	oneSecret = "0000000000000000000000000000000000000000000000000000000000000001"
	onePublic = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
)

type fixture struct {
	ctrl  *Controller
	vault *mock.MockVault
	ks    *mock.MockKeyStore
}

func newFixture(t *testing.T, exists bool, opts ...Option) *fixture {
	t.Helper()
	mc := gomock.NewController(t)

	vault := mock.NewMockVault(mc)
	vault.EXPECT().Exists().Return(exists).AnyTimes()

	return &fixture{
		ctrl:  NewController(vault, logger.Nop(), opts...),
		vault: vault,
		ks:    mock.NewMockKeyStore(mc),
	}
}

// unlocked drives the fixture through a successful unlock.
func (f *fixture) unlocked(t *testing.T) *session.ConnectedState {
	t.Helper()
	f.vault.EXPECT().OpenOrCreate(gomock.Any(), "correct").Return(f.ks, nil)

	f.ctrl.Update(context.Background(), UnlockPasswordChanged{Text: "correct"})
	require.Equal(t, OutcomeApplied, f.ctrl.Update(context.Background(), UnlockSubmit{}))

	s := Session(f.ctrl.Current())
	require.NotNil(t, s)
	return s
}

func (f *fixture) update(ev Event) Outcome {
	return f.ctrl.Update(context.Background(), ev)
}

func newRequest(name string) (*session.PendingRequest, <-chan models.Decision) {
	return session.NewPendingRequest(
		models.PeerMetadata{Name: name, PublicKey: "peer-" + name},
		models.RequestKind{Method: "sign_event"},
	)
}

func TestNewController_StartsOnUnlock(t *testing.T) {
	f := newFixture(t, true)

	u, ok := f.ctrl.Current().(*UnlockRoute)
	require.True(t, ok)
	assert.True(t, u.Masked)
	assert.True(t, u.StoreExists)
	assert.Empty(t, u.Password)
	assert.Nil(t, Session(f.ctrl.Current()))
}

func TestNavigate_AuthenticatedTargetsRejectedWhileLocked(t *testing.T) {
	f := newFixture(t, false)

	for _, target := range []RouteName{Home, KeypairsList, KeypairsAdd, Relays, Wallet, Settings} {
		t.Run(target.String(), func(t *testing.T) {
			assert.Equal(t, OutcomeNavigationRejected, f.update(Navigate{Target: target}))
			assert.Equal(t, Unlock, f.ctrl.Current().Name())
		})
	}
}

func TestNavigate_UnknownTargetRejected(t *testing.T) {
	f := newFixture(t, false)
	f.unlocked(t)

	assert.Equal(t, OutcomeNavigationRejected, f.update(Navigate{Target: RouteName(42)}))
	assert.Equal(t, Home, f.ctrl.Current().Name())
}

func TestUnlock_NewStoreLandsOnEmptyHome(t *testing.T) {
	f := newFixture(t, false)
	f.unlocked(t)

	_, ok := f.ctrl.Current().(*HomeRoute)
	require.True(t, ok)

	vm := f.ctrl.Render(context.Background())
	assert.Equal(t, Home, vm.Route)
	assert.Zero(t, vm.PendingCount)
	assert.Nil(t, vm.Prompt)
	assert.Nil(t, vm.Unlock)
}

func TestUnlock_WrongPassphraseKeepsUnlockScreen(t *testing.T) {
	f := newFixture(t, true)
	f.vault.EXPECT().OpenOrCreate(gomock.Any(), "wrong").Return(nil, store.ErrWrongPassphrase)

	f.update(UnlockPasswordChanged{Text: "wrong"})
	assert.Equal(t, OutcomeUnlockFailed, f.update(UnlockSubmit{}))

	u, ok := f.ctrl.Current().(*UnlockRoute)
	require.True(t, ok)
	assert.Equal(t, "wrong", u.Password)
	assert.ErrorIs(t, f.ctrl.LastError(), store.ErrWrongPassphrase)

	// next update clears the error
	f.update(UnlockToggleMask{})
	assert.NoError(t, f.ctrl.LastError())
	assert.False(t, u.Masked)
}

func TestUnlockEvents_IgnoredWhenUnlocked(t *testing.T) {
	f := newFixture(t, false)
	f.unlocked(t)

	assert.Equal(t, OutcomeIgnored, f.update(UnlockPasswordChanged{Text: "x"}))
	assert.Equal(t, OutcomeIgnored, f.update(UnlockToggleMask{}))
	assert.Equal(t, OutcomeIgnored, f.update(UnlockSubmit{}))
	assert.Equal(t, OutcomeIgnored, f.update(DeleteAllData{}))
}

func TestNavigate_SharesSessionAcrossRoutes(t *testing.T) {
	f := newFixture(t, false)
	s := f.unlocked(t)

	for _, target := range []RouteName{KeypairsList, KeypairsAdd, Relays, Wallet, Settings, Home} {
		require.Equal(t, OutcomeApplied, f.update(Navigate{Target: target}))
		assert.Equal(t, target, f.ctrl.Current().Name())
		assert.Same(t, s, Session(f.ctrl.Current()))
	}
}

func TestNavigate_RebuildsRouteData(t *testing.T) {
	f := newFixture(t, false)
	f.unlocked(t)

	f.update(Navigate{Target: KeypairsAdd})
	f.update(KeypairSecretInputChanged{Text: "abc"})
	f.update(Navigate{Target: KeypairsAdd})

	add := f.ctrl.Current().(*KeypairsRoute).Subroute.(*KeypairsAddPage)
	assert.Empty(t, add.SecretInput)
}

func TestLock_DropsSessionAndAbandonsPending(t *testing.T) {
	f := newFixture(t, false)
	f.unlocked(t)
	f.ks.EXPECT().Close().Return(nil)

	a, chA := newRequest("A")
	b, chB := newRequest("B")
	require.Equal(t, OutcomeApplied, f.update(IncomingSigningRequest{Request: a}))
	require.Equal(t, OutcomeApplied, f.update(IncomingSigningRequest{Request: b}))

	require.Equal(t, OutcomeApplied, f.update(Navigate{Target: Unlock}))

	assert.Nil(t, Session(f.ctrl.Current()))
	for _, ch := range []<-chan models.Decision{chA, chB} {
		_, ok := <-ch
		assert.False(t, ok, "abandoned request must close without a decision")
	}

	assert.Equal(t, OutcomeNavigationRejected, f.update(Navigate{Target: Home}))
}

func TestLock_RelockedSessionStartsEmpty(t *testing.T) {
	f := newFixture(t, false)
	first := f.unlocked(t)
	f.ks.EXPECT().Close().Return(nil)

	stale, staleCh := newRequest("stale")
	require.Equal(t, OutcomeApplied, f.update(IncomingSigningRequest{Request: stale}))
	require.Equal(t, OutcomeApplied, f.update(Navigate{Target: Unlock}))

	second := f.unlocked(t)
	require.NotSame(t, first, second)

	vm := f.ctrl.Render(context.Background())
	assert.Nil(t, vm.Prompt)
	assert.Zero(t, vm.PendingCount)
	assert.Zero(t, second.Pending.Len())

	assert.Equal(t, OutcomeIgnored, f.update(ApproveFirstPending{}))
	assert.Equal(t, OutcomeIgnored, f.update(RejectFirstPending{}))

	_, ok := <-staleCh
	assert.False(t, ok, "request from the previous session must stay abandoned")

	fresh, freshCh := newRequest("fresh")
	require.Equal(t, OutcomeApplied, f.update(IncomingSigningRequest{Request: fresh}))
	require.Equal(t, OutcomeApplied, f.update(ApproveFirstPending{}))
	assert.Equal(t, models.DecisionApprove, <-freshCh)
}

func TestIncomingRequest_DroppedWhileLocked(t *testing.T) {
	f := newFixture(t, true)
	r, ch := newRequest("A")

	assert.Equal(t, OutcomeRequestDropped, f.update(IncomingSigningRequest{Request: r}))

	_, ok := <-ch
	assert.False(t, ok)
}

func TestPending_FIFOApproveAndReject(t *testing.T) {
	f := newFixture(t, false)
	f.unlocked(t)

	a, chA := newRequest("A")
	b, chB := newRequest("B")
	f.update(IncomingSigningRequest{Request: a})
	f.update(IncomingSigningRequest{Request: b})

	vm := f.ctrl.Render(context.Background())
	require.NotNil(t, vm.Prompt)
	assert.Equal(t, "A", vm.Prompt.Request.Peer.Name)
	assert.Equal(t, 1, vm.Prompt.Waiting)
	assert.Equal(t, 2, vm.PendingCount)

	require.Equal(t, OutcomeApplied, f.update(ApproveFirstPending{}))

	d, ok := <-chA
	require.True(t, ok)
	assert.Equal(t, models.DecisionApprove, d)

	vm = f.ctrl.Render(context.Background())
	require.NotNil(t, vm.Prompt)
	assert.Equal(t, "B", vm.Prompt.Request.Peer.Name)
	assert.Zero(t, vm.Prompt.Waiting)

	require.Equal(t, OutcomeApplied, f.update(RejectFirstPending{}))
	d, ok = <-chB
	require.True(t, ok)
	assert.Equal(t, models.DecisionReject, d)

	assert.Nil(t, f.ctrl.Render(context.Background()).Prompt)
}

func TestPending_ResolveOnEmptyQueueIsNoop(t *testing.T) {
	f := newFixture(t, false)

	assert.Equal(t, OutcomeIgnored, f.update(ApproveFirstPending{}))
	assert.Equal(t, OutcomeIgnored, f.update(RejectFirstPending{}))

	f.unlocked(t)
	assert.Equal(t, OutcomeIgnored, f.update(ApproveFirstPending{}))
	assert.Equal(t, OutcomeIgnored, f.update(RejectFirstPending{}))
	assert.Equal(t, Home, f.ctrl.Current().Name())
}

func TestPending_PromptOverlaysEveryScreen(t *testing.T) {
	f := newFixture(t, false)
	f.unlocked(t)

	r, _ := newRequest("A")
	f.update(IncomingSigningRequest{Request: r})
	f.update(Navigate{Target: Settings})

	vm := f.ctrl.Render(context.Background())
	assert.Equal(t, Settings, vm.Route)
	require.NotNil(t, vm.Prompt)
	assert.Equal(t, r.ID, vm.Prompt.Request.ID)
}

func TestKeypairInput_ParseEnablesSave(t *testing.T) {
	f := newFixture(t, false)
	f.unlocked(t)
	f.update(Navigate{Target: KeypairsAdd})

	f.update(KeypairSecretInputChanged{Text: oneSecret})
	vm := f.ctrl.Render(context.Background())
	require.NotNil(t, vm.KeypairsAdd)
	assert.True(t, vm.KeypairsAdd.CanSave)
	assert.Equal(t, onePublic, vm.KeypairsAdd.PublicKey)

	// same input yields the same result
	f.update(KeypairSecretInputChanged{Text: oneSecret})
	assert.Equal(t, vm, f.ctrl.Render(context.Background()))

	broken := oneSecret[:len(oneSecret)-1] + "g"
	f.update(KeypairSecretInputChanged{Text: broken})
	vm = f.ctrl.Render(context.Background())
	assert.False(t, vm.KeypairsAdd.CanSave)
	assert.Empty(t, vm.KeypairsAdd.PublicKey)
	assert.Equal(t, broken, vm.KeypairsAdd.SecretInput)
}

func TestKeypairSave(t *testing.T) {
	t.Run("disabled without a valid key", func(t *testing.T) {
		f := newFixture(t, false)
		f.unlocked(t)
		f.update(Navigate{Target: KeypairsAdd})
		f.update(KeypairSecretInputChanged{Text: "nope"})

		assert.Equal(t, OutcomeIgnored, f.update(KeypairSaveRequested{}))
	})

	t.Run("success clears input", func(t *testing.T) {
		f := newFixture(t, false)
		f.unlocked(t)
		f.update(Navigate{Target: KeypairsAdd})
		f.update(KeypairSecretInputChanged{Text: oneSecret})

		f.ks.EXPECT().
			SaveKeypair(gomock.Any(), gomock.AssignableToTypeOf(models.Keypair{})).
			DoAndReturn(func(_ context.Context, kp models.Keypair) error {
				assert.Equal(t, onePublic, kp.PublicKey)
				assert.Equal(t, oneSecret, kp.SecretKey)
				return nil
			})

		require.Equal(t, OutcomeApplied, f.update(KeypairSaveRequested{}))

		vm := f.ctrl.Render(context.Background())
		assert.Empty(t, vm.KeypairsAdd.SecretInput)
		assert.False(t, vm.KeypairsAdd.CanSave)
		assert.Contains(t, vm.KeypairsAdd.Status, "saved 79be66")
		assert.NoError(t, vm.KeypairsAdd.SaveErr)
	})

	t.Run("failure is surfaced", func(t *testing.T) {
		f := newFixture(t, false)
		f.unlocked(t)
		f.update(Navigate{Target: KeypairsAdd})
		f.update(KeypairSecretInputChanged{Text: oneSecret})

		f.ks.EXPECT().SaveKeypair(gomock.Any(), gomock.Any()).Return(store.ErrKeypairExists)

		assert.Equal(t, OutcomeStoreFailed, f.update(KeypairSaveRequested{}))
		assert.ErrorIs(t, f.ctrl.LastError(), store.ErrKeypairExists)

		vm := f.ctrl.Render(context.Background())
		assert.ErrorIs(t, vm.KeypairsAdd.SaveErr, store.ErrKeypairExists)
		assert.True(t, vm.KeypairsAdd.CanSave, "input is kept for a retry")
	})
}

func TestKeypairGenerate(t *testing.T) {
	f := newFixture(t, false)
	f.unlocked(t)
	f.update(Navigate{Target: KeypairsAdd})

	var saved models.Keypair
	f.ks.EXPECT().SaveKeypair(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, kp models.Keypair) error {
			saved = kp
			return nil
		})

	require.Equal(t, OutcomeApplied, f.update(KeypairGenerateRequested{}))
	assert.Len(t, saved.PublicKey, 64)
	assert.Len(t, saved.SecretKey, 64)

	// generate is only valid on the add page
	f.update(Navigate{Target: KeypairsList})
	assert.Equal(t, OutcomeIgnored, f.update(KeypairGenerateRequested{}))
}

func TestKeypairsList_Render(t *testing.T) {
	f := newFixture(t, false, WithPageSize(2))
	f.unlocked(t)
	f.update(Navigate{Target: KeypairsList})

	f.ks.EXPECT().ListPublicKeys(gomock.Any(), 3, 0).Return([]string{"a", "b", "c"}, nil)
	vm := f.ctrl.Render(context.Background())
	require.NotNil(t, vm.Keypairs)
	assert.Equal(t, []string{"a", "b"}, vm.Keypairs.PublicKeys)
	assert.True(t, vm.Keypairs.HasNext)

	f.ks.EXPECT().ListPublicKeys(gomock.Any(), 1, 2).Return([]string{"c"}, nil)
	require.Equal(t, OutcomeApplied, f.update(KeypairsPageChanged{Delta: 1}))
	f.ks.EXPECT().ListPublicKeys(gomock.Any(), 3, 2).Return([]string{"c"}, nil)
	vm = f.ctrl.Render(context.Background())
	assert.Equal(t, 1, vm.Keypairs.Page)
	assert.Equal(t, []string{"c"}, vm.Keypairs.PublicKeys)
	assert.False(t, vm.Keypairs.HasNext)

	require.Equal(t, OutcomeApplied, f.update(KeypairsPageChanged{Delta: -5}))
	assert.Equal(t, OutcomeIgnored, f.update(KeypairsPageChanged{Delta: -1}))
	assert.Zero(t, f.ctrl.Current().(*KeypairsRoute).Subroute.(*KeypairsListPage).Page)
}

func TestKeypairsList_PageBounds(t *testing.T) {
	f := newFixture(t, false, WithPageSize(2))
	f.unlocked(t)
	f.update(Navigate{Target: KeypairsList})
	listPage := func() *KeypairsListPage {
		return f.ctrl.Current().(*KeypairsRoute).Subroute.(*KeypairsListPage)
	}

	t.Run("empty next page", func(t *testing.T) {
		f.ks.EXPECT().ListPublicKeys(gomock.Any(), 1, 2).Return([]string{}, nil)
		assert.Equal(t, OutcomeIgnored, f.update(KeypairsPageChanged{Delta: 1}))
		assert.Zero(t, listPage().Page)
	})

	t.Run("store failure", func(t *testing.T) {
		f.ks.EXPECT().ListPublicKeys(gomock.Any(), 1, 2).Return(nil, errors.New("disk gone"))
		assert.Equal(t, OutcomeStoreFailed, f.update(KeypairsPageChanged{Delta: 1}))
		assert.Zero(t, listPage().Page)
	})

	t.Run("huge delta is clamped", func(t *testing.T) {
		maxPage := math.MaxInt/2 - 1
		f.ks.EXPECT().ListPublicKeys(gomock.Any(), 1, maxPage*2).Return([]string{}, nil)
		assert.Equal(t, OutcomeIgnored, f.update(KeypairsPageChanged{Delta: math.MaxInt}))
		assert.Zero(t, listPage().Page)
	})

	t.Run("render offset never negative", func(t *testing.T) {
		listPage().Page = math.MaxInt/2 - 1
		f.ks.EXPECT().ListPublicKeys(gomock.Any(), 3, gomock.Any()).DoAndReturn(
			func(_ context.Context, _, offset int) ([]string, error) {
				assert.GreaterOrEqual(t, offset, 0)
				return []string{}, nil
			})
		vm := f.ctrl.Render(context.Background())
		assert.False(t, vm.Keypairs.LoadFailed)

		f.ks.EXPECT().ListPublicKeys(gomock.Any(), 1, gomock.Any()).Times(0)
		assert.Equal(t, OutcomeIgnored, f.update(KeypairsPageChanged{Delta: 5}))
	})
}

func TestKeypairsList_LoadFailure(t *testing.T) {
	f := newFixture(t, false)
	f.unlocked(t)
	f.update(Navigate{Target: KeypairsList})

	f.ks.EXPECT().ListPublicKeys(gomock.Any(), DefaultPageSize+1, 0).Return(nil, store.ErrStoreClosed)

	vm := f.ctrl.Render(context.Background())
	require.NotNil(t, vm.Keypairs)
	assert.True(t, vm.Keypairs.LoadFailed)
	assert.Empty(t, vm.Keypairs.PublicKeys)
}

func TestKeypairDelete(t *testing.T) {
	f := newFixture(t, false)
	f.unlocked(t)
	f.update(Navigate{Target: KeypairsList})

	f.ks.EXPECT().DeleteKeypair(gomock.Any(), "a").Return(nil)
	assert.Equal(t, OutcomeApplied, f.update(KeypairDeleteRequested{PublicKey: "a"}))

	f.ks.EXPECT().DeleteKeypair(gomock.Any(), "b").Return(store.ErrKeypairNotFound)
	assert.Equal(t, OutcomeStoreFailed, f.update(KeypairDeleteRequested{PublicKey: "b"}))
	assert.ErrorIs(t, f.ctrl.LastError(), store.ErrKeypairNotFound)
}

func TestDeleteAllData(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t, true)
		f.vault.EXPECT().Delete().Return(nil)

		require.Equal(t, OutcomeApplied, f.update(DeleteAllData{}))
		assert.False(t, f.ctrl.Current().(*UnlockRoute).StoreExists)
	})

	t.Run("failure", func(t *testing.T) {
		f := newFixture(t, true)
		f.vault.EXPECT().Delete().Return(errors.New("permission denied"))

		assert.Equal(t, OutcomeStoreFailed, f.update(DeleteAllData{}))
		assert.True(t, f.ctrl.Current().(*UnlockRoute).StoreExists)
		assert.EqualError(t, f.ctrl.LastError(), "permission denied")
	})
}

func TestController_Close(t *testing.T) {
	f := newFixture(t, false)
	f.unlocked(t)
	f.ks.EXPECT().Close().Return(nil)

	r, ch := newRequest("A")
	f.update(IncomingSigningRequest{Request: r})

	require.NoError(t, f.ctrl.Close())
	assert.Equal(t, Unlock, f.ctrl.Current().Name())

	_, ok := <-ch
	assert.False(t, ok)

	// closing while locked is a no-op
	assert.NoError(t, f.ctrl.Close())
}

func TestUpdate_NilRequestIgnored(t *testing.T) {
	f := newFixture(t, false)
	assert.Equal(t, OutcomeIgnored, f.update(IncomingSigningRequest{}))
}
