package dispatch

import (
	"context"
	"fmt"

	"github.com/aviate-labs/agent-go"
	"github.com/aviate-labs/agent-go/principal"
)

// AgentCaller adapts an agent-go Agent to the Caller interface.
type AgentCaller struct {
	agent *agent.Agent
}

// NewAgentCaller wraps a.
func NewAgentCaller(a *agent.Agent) (*AgentCaller, error) {
	if a == nil {
		return nil, fmt.Errorf("nil agent")
	}
	return &AgentCaller{agent: a}, nil
}

// Call submits the update call and waits for the certified reply. The agent
// polls on its own schedule; once submitted the call cannot be withdrawn, so
// a context that ends first only stops the wait.
func (c *AgentCaller) Call(
	ctx context.Context,
	canisterID principal.Principal,
	method string,
	args []any,
	out []any,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- c.agent.Call(canisterID, method, args, out)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
