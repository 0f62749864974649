package order_test

import (
	"fmt"
	"testing"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"
	"github.com/Didier2101/plato-facil-sub001/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Placed))
		assert.Equal(t, 2, int(order.Ready))
		assert.Equal(t, 3, int(order.EnRoute))
		assert.Equal(t, 4, int(order.Arrived))
		assert.Equal(t, 5, int(order.Delivered))
		assert.Equal(t, 6, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Placed,
			order.Ready,
			order.EnRoute,
			order.Arrived,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(7),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Placed, "Placed"},
			{order.Ready, "Ready"},
			{order.EnRoute, "EnRoute"},
			{order.Arrived, "Arrived"},
			{order.Delivered, "Delivered"},
			{order.Cancelled, "Cancelled"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return Unknown for invalid statuses", func(t *testing.T) {
		assert.Equal(t, "Unknown", order.Unknown.String())
		assert.Equal(t, "Unknown", order.Status(-1).String())
		assert.Equal(t, "Unknown", order.Status(100).String())
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should report Delivered and Cancelled as terminal", func(t *testing.T) {
		assert.True(t, order.Delivered.IsTerminal())
		assert.True(t, order.Cancelled.IsTerminal())
	})

	t.Run("should report in-flight statuses as non-terminal", func(t *testing.T) {
		assert.False(t, order.Placed.IsTerminal())
		assert.False(t, order.Ready.IsTerminal())
		assert.False(t, order.EnRoute.IsTerminal())
		assert.False(t, order.Arrived.IsTerminal())
	})
}

func TestStatus_Advance(t *testing.T) {
	t.Run("should follow the full delivery route", func(t *testing.T) {
		route := []order.Status{order.Ready, order.EnRoute, order.Arrived, order.Delivered}

		status := order.Placed
		for _, target := range route {
			next, err := status.Advance(target, order.Delivery)
			require.NoError(t, err)
			assert.Equal(t, target, next)
			status = next
		}
	})

	t.Run("should follow the counter route for DineIn and Takeaway", func(t *testing.T) {
		for _, orderType := range []order.Type{order.DineIn, order.Takeaway} {
			status, err := order.Placed.Advance(order.Ready, orderType)
			require.NoError(t, err)

			status, err = status.Advance(order.Delivered, orderType)
			require.NoError(t, err)
			assert.Equal(t, order.Delivered, status)
		}
	})

	t.Run("should reject courier states for counter orders", func(t *testing.T) {
		_, err := order.Ready.Advance(order.EnRoute, order.DineIn)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "EnRoute is not reachable for DineIn orders")
	})

	t.Run("should reject skipping states", func(t *testing.T) {
		testCases := []struct {
			from      order.Status
			target    order.Status
			orderType order.Type
		}{
			{order.Placed, order.Delivered, order.DineIn},
			{order.Placed, order.EnRoute, order.Delivery},
			{order.Ready, order.Arrived, order.Delivery},
			{order.Ready, order.Delivered, order.Delivery},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("%s to %s for %s", tc.from, tc.target, tc.orderType), func(t *testing.T) {
				_, err := tc.from.Advance(tc.target, tc.orderType)
				require.ErrorIs(t, err, order.ErrInvalidTransition)
			})
		}
	})

	t.Run("should report a target behind the current state as stale", func(t *testing.T) {
		_, err := order.EnRoute.Advance(order.Ready, order.Delivery)

		require.ErrorIs(t, err, order.ErrStaleTransition)
		assert.Contains(t, err.Error(), "order is already EnRoute")
	})

	t.Run("should reject advancement out of terminal states", func(t *testing.T) {
		_, err := order.Delivered.Advance(order.Ready, order.DineIn)
		require.ErrorIs(t, err, order.ErrStaleTransition)

		_, err = order.Cancelled.Advance(order.Ready, order.DineIn)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should reject invalid targets and types", func(t *testing.T) {
		_, err := order.Placed.Advance(order.Unknown, order.DineIn)
		require.Error(t, err)

		_, err = order.Placed.Advance(order.Ready, order.UnknownType)
		require.Error(t, err)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should cancel a Placed order", func(t *testing.T) {
		newStatus, err := order.Placed.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, newStatus)
	})

	t.Run("should reject cancellation after acceptance", func(t *testing.T) {
		acceptedStatuses := []order.Status{
			order.Ready,
			order.EnRoute,
			order.Arrived,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range acceptedStatuses {
			t.Run(fmt.Sprintf("should reject cancelling a %s order", status.String()), func(t *testing.T) {
				_, err := status.Cancel()

				require.ErrorIs(t, err, order.ErrAlreadyProcessing)
			})
		}
	})
}

func TestStatus_ValidateCourierAssignment(t *testing.T) {
	t.Run("should reject a courier on counter orders in any state", func(t *testing.T) {
		for _, status := range []order.Status{order.Placed, order.Ready, order.Delivered} {
			require.Error(t, status.ValidateCourierAssignment(order.DineIn, true))
			require.NoError(t, status.ValidateCourierAssignment(order.DineIn, false))
		}
	})

	t.Run("should require a courier on deliveries from EnRoute onwards", func(t *testing.T) {
		for _, status := range []order.Status{order.EnRoute, order.Arrived, order.Delivered} {
			require.NoError(t, status.ValidateCourierAssignment(order.Delivery, true))
			require.Error(t, status.ValidateCourierAssignment(order.Delivery, false))
		}
	})

	t.Run("should reject a courier on deliveries before EnRoute", func(t *testing.T) {
		for _, status := range []order.Status{order.Placed, order.Ready} {
			require.Error(t, status.ValidateCourierAssignment(order.Delivery, true))
			require.NoError(t, status.ValidateCourierAssignment(order.Delivery, false))
		}
	})
}
