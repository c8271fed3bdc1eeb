package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/inversie/internal/inversie/store"
)

// hideForeign implements the ownership rule for client owned resources: a
// resource that belongs to someone else is reported exactly like one that
// does not exist, so ids cannot be probed.
func hideForeign(ownerID, callerID string) error {
	if ownerID != callerID {
		return ErrNotFound
	}
	return nil
}

// notFound converts store.ErrNotFound into ErrNotFound and passes anything
// else through.
func notFound(err error, what string) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	}
	return err
}

// requireGuardianOf checks that guardianID may act on clientID's resources.
// A missing relation is ErrForbidden rather than ErrNotFound because the
// route already names the client.
func requireGuardianOf(ctx context.Context, st store.Store, clientID string, caller Principal) error {
	if !caller.IsGuardian() {
		return fmt.Errorf("%w: bewindvoerder role required", ErrForbidden)
	}
	ok, err := st.Guardians().RelationExists(ctx, clientID, caller.User.ID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: not a guardian of this client", ErrForbidden)
	}
	return nil
}
