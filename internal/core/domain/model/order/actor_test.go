package order_test

import (
	"fmt"
	"testing"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/kernel"
	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	t.Run("should create an actor with a validated identity and role", func(t *testing.T) {
		id := kernel.NewUUID()

		actor, err := order.NewActor(id, order.RoleKitchen)

		require.NoError(t, err)
		require.NoError(t, actor.Validate())
		assert.True(t, actor.ID().IsEqual(id))
		assert.Equal(t, order.RoleKitchen, actor.Role())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewActor(invalidID, order.RoleKitchen)

		require.Error(t, err)
	})

	t.Run("should fail with unknown role", func(t *testing.T) {
		_, err := order.NewActor(kernel.NewUUID(), order.UnknownRole)

		require.Error(t, err)
	})
}

func TestActor_CanRequest(t *testing.T) {
	// Every role is limited to the transitions it operates:
	// Kitchen marks Ready and cancels, couriers move deliveries,
	// the cashier produces Delivered through settlement.
	allowed := map[order.Role][]order.Status{
		order.RoleKitchen: {order.Ready, order.Cancelled},
		order.RoleCourier: {order.EnRoute, order.Arrived},
		order.RoleCashier: {order.Delivered},
	}

	targets := []order.Status{
		order.Ready, order.EnRoute, order.Arrived, order.Delivered, order.Cancelled,
	}

	for role, permitted := range allowed {
		actor, err := order.NewActor(kernel.NewUUID(), role)
		require.NoError(t, err)

		for _, target := range targets {
			shouldAllow := false
			for _, s := range permitted {
				if s == target {
					shouldAllow = true
				}
			}

			t.Run(fmt.Sprintf("%s requesting %s", role, target), func(t *testing.T) {
				err := actor.CanRequest(target)

				if shouldAllow {
					require.NoError(t, err)
				} else {
					require.ErrorIs(t, err, order.ErrForbidden)
				}
			})
		}
	}
}

func TestActor_Validate(t *testing.T) {
	t.Run("should fail validation for zero value actor", func(t *testing.T) {
		var actor order.Actor

		err := actor.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrActorIsNotConstructed, err)
	})
}
