// Package dispatch sends pour plans to the controller and turns every failure into data.
package dispatch

import (
	"context"
	"errors"
	"fmt"

	"autonomous-barman/internal/model"
	"autonomous-barman/pkg/dispenser"
	"autonomous-barman/pkg/log"
)

// Client wraps the controller transport. Nothing it returns is an error.
type Client struct {
	l   log.Logger
	dev dispenser.IDispenser
}

// New creates a dispatch client.
func New(l log.Logger, dev dispenser.IDispenser) *Client {
	return &Client{l: l, dev: dev}
}

// Dispatch posts plan exactly once.
func (c *Client) Dispatch(ctx context.Context, plan model.PourPlan) model.ControllerResult {
	c.l.Infof(ctx, "dispatch.Dispatch: %s (%d pumps, %.0f ml) -> %s", plan.RecipeID, len(plan.Pumps), plan.TotalML, c.dev.Endpoint())

	reply, err := c.dev.Dispense(ctx, plan)
	if err != nil {
		c.l.Errorf(ctx, "dispatch.Dispatch: %s: %v", plan.RecipeID, err)
		return model.NewControllerError(describe(err))
	}

	c.l.Infof(ctx, "dispatch.Dispatch: %s accepted with HTTP %d", plan.RecipeID, reply.StatusCode)
	return model.ControllerResult{Body: reply.Body}
}

// Status reports controller queue and liveness. Failures land in the result.
func (c *Client) Status(ctx context.Context) model.DispenserStatus {
	out := model.DispenserStatus{Endpoint: c.dev.Endpoint()}

	if h, err := c.dev.Health(ctx); err != nil {
		c.l.Warnf(ctx, "dispatch.Status: health: %v", err)
		out.Error = describe(err)
	} else {
		out.Online = true
		out.Health = h.Status
	}

	if st, err := c.dev.Status(ctx); err != nil {
		c.l.Warnf(ctx, "dispatch.Status: status: %v", err)
		if out.Error == "" {
			out.Error = describe(err)
		}
	} else {
		out.State = st.State
		out.QueuedOrders = st.QueuedOrders
		out.EstimatedWait = st.EstimatedWait
	}

	return out
}

func describe(err error) string {
	var statusErr *dispenser.StatusError
	switch {
	case errors.As(err, &statusErr):
		return fmt.Sprintf("El dispensador respondió con HTTP %d", statusErr.StatusCode)
	case errors.Is(err, dispenser.ErrMalformedBody):
		return "El dispensador devolvió una respuesta inválida"
	case errors.Is(err, context.DeadlineExceeded):
		return "El dispensador no respondió a tiempo"
	default:
		return fmt.Sprintf("Error al comunicarse con el dispensador: %v", err)
	}
}
