package route

import (
	"context"

	"github.com/MKhiriev/go-sign-keeper/internal/session"
)

// ViewModel is everything a renderer needs for one frame. Exactly one of
// the per-screen views is set, matching Route.
type ViewModel struct {
	Route RouteName

	// Prompt is the head of the pending queue, nil when the queue is empty
	// or the app is locked. It overlays whatever screen is active.
	Prompt       *Prompt
	PendingCount int

	Unlock      *UnlockView
	Keypairs    *KeypairsListView
	KeypairsAdd *KeypairsAddView
}

// Prompt describes the request awaiting a decision.
type Prompt struct {
	Request session.RequestView
	// Waiting counts the requests queued behind this one.
	Waiting int
}

type UnlockView struct {
	Password    string
	Masked      bool
	StoreExists bool
}

type KeypairsListView struct {
	Page       int
	PublicKeys []string
	HasNext    bool
	LoadFailed bool
}

type KeypairsAddView struct {
	SecretInput string
	CanSave     bool
	// PublicKey is the key derived from SecretInput, empty when the input
	// does not parse.
	PublicKey string
	Status    string
	SaveErr   error
}

// Render builds the view model for the current route. It reads the store
// for the keypair list and never changes state.
func (c *Controller) Render(ctx context.Context) ViewModel {
	vm := ViewModel{Route: c.current.Name()}

	if s := Session(c.current); s != nil {
		vm.PendingCount = s.Pending.Len()
		if head, ok := s.Pending.Front(); ok {
			vm.Prompt = &Prompt{Request: head, Waiting: vm.PendingCount - 1}
		}
	}

	switch r := c.current.(type) {
	case *UnlockRoute:
		vm.Unlock = &UnlockView{
			Password:    r.Password,
			Masked:      r.Masked,
			StoreExists: r.StoreExists,
		}
	case *KeypairsRoute:
		switch sub := r.Subroute.(type) {
		case *KeypairsListPage:
			vm.Keypairs = c.renderList(ctx, r.Session, sub)
		case *KeypairsAddPage:
			add := &KeypairsAddView{
				SecretInput: sub.SecretInput,
				CanSave:     sub.CanSave(),
				Status:      sub.Status,
				SaveErr:     sub.SaveErr,
			}
			if sub.Keypair != nil {
				add.PublicKey = sub.Keypair.PublicKey
			}
			vm.KeypairsAdd = add
		}
	}

	return vm
}

func (c *Controller) renderList(ctx context.Context, s *session.ConnectedState, page *KeypairsListPage) *KeypairsListView {
	view := &KeypairsListView{Page: page.Page, PublicKeys: []string{}}

	// one extra row tells whether a next page exists
	keys, err := s.Store.ListPublicKeys(ctx, c.pageSize+1, page.Page*c.pageSize)
	if err != nil {
		c.logger.Err(err).Str("func", "*Controller.renderList").Int("page", page.Page).Msg("failed to list public keys")
		view.LoadFailed = true
		return view
	}

	if len(keys) > c.pageSize {
		view.HasNext = true
		keys = keys[:c.pageSize]
	}
	view.PublicKeys = keys

	return view
}
