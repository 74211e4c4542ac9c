// Copyright 2026 The Volt Authors
// SPDX-License-Identifier: Apache-2.0

package orders

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/voltmarket/volt/cmd/volt/cli"
	"github.com/voltmarket/volt/lib/api"
)

type buyParams struct {
	cli.JSONOutput
	Quantity int    `flag:"quantity,n" desc:"number of nodes"                               default:"1"`
	Price    string `flag:"price,p"    desc:"limit price per GPU-hour, in dollars (e.g. 2.50)"`
	Start    string `flag:"start"      desc:"reservation start, RFC 3339 (default: now)"`
	Duration string `flag:"duration,d" desc:"reservation length (e.g. 1h, 30m)"             default:"1h"`
	NoWait   bool   `flag:"no-wait"    desc:"place the order and return without waiting for a fill"`
}

// BuyCommand returns the top-level "buy" command. It places a buy
// order and, on a terminal, waits for the order to fill with a live
// status line.
func BuyCommand() *cli.Command {
	var params buyParams

	return &cli.Command{
		Name:    "buy",
		Summary: "Buy compute",
		Description: `Place a buy order for GPU compute.

The order rests on the book until a matching sell order fills it, the
reservation window passes, or you cancel it with "volt orders cancel".
By default the command waits and reports the fill; use --no-wait to
return immediately after placement.`,
		Usage: "volt buy <instance-type> [flags]",
		Examples: []cli.Example{
			{
				Description: "Buy one A100 node for an hour at up to $2.50/GPU/hr",
				Command:     "volt buy a100-80gb --price 2.50",
			},
			{
				Description: "Buy eight nodes for a day starting tonight",
				Command:     "volt buy h100 -n 8 --price 4.00 --start 2026-08-29T22:00:00Z --duration 24h",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			request, err := buildOrderRequest("buy", args, params.Quantity, params.Price, params.Start, params.Duration)
			if err != nil {
				return err
			}

			connection, err := cli.ConnectAPI(logger)
			if err != nil {
				return err
			}
			defer connection.Close()

			order, err := connection.Client.CreateOrder(ctx, *request)
			if err != nil {
				return cli.WrapAPIError(err)
			}

			if !params.NoWait && !params.OutputJSON {
				order, err = waitForFill(ctx, connection.Client, order)
				if err != nil {
					return err
				}
			}

			if done, err := params.EmitJSON(order); done {
				return err
			}
			printOrder(order)
			if order.Status == "filled" {
				fmt.Println("\nOrder filled. Run \"volt nodes list\" to see your nodes.")
			}
			return nil
		},
	}
}

// buildOrderRequest validates the shared buy/sell arguments and
// assembles the order request.
func buildOrderRequest(side string, args []string, quantity int, price, start, duration string) (*api.OrderRequest, error) {
	if len(args) < 1 {
		return nil, cli.Validation("instance type is required\n\nUsage: volt %s <instance-type> [flags]", side)
	}
	if len(args) > 1 {
		return nil, cli.Validation("unexpected argument: %s", args[1])
	}
	instanceType := args[0]
	if quantity < 1 {
		return nil, cli.Validation("--quantity must be at least 1")
	}
	if price == "" {
		return nil, cli.Validation("--price is required")
	}
	priceCents, err := cli.ParseDollars(price)
	if err != nil {
		return nil, cli.Validation("--price: %v", err)
	}
	if priceCents <= 0 {
		return nil, cli.Validation("--price must be positive")
	}

	startAt := time.Now()
	if start != "" {
		startAt, err = time.Parse(time.RFC3339, start)
		if err != nil {
			return nil, cli.Validation("--start: %v (use RFC 3339, e.g. 2026-08-29T22:00:00Z)", err)
		}
	}
	length, err := time.ParseDuration(duration)
	if err != nil {
		return nil, cli.Validation("--duration: %v", err)
	}
	if length <= 0 {
		return nil, cli.Validation("--duration must be positive")
	}
	endAt := startAt.Add(length)

	return &api.OrderRequest{
		Side:         side,
		InstanceType: instanceType,
		Quantity:     quantity,
		PriceCents:   priceCents,
		StartAt:      &startAt,
		EndAt:        &endAt,
	}, nil
}

// orderFinished reports whether an order status is terminal.
func orderFinished(status string) bool {
	switch status {
	case "filled", "cancelled", "expired", "rejected":
		return true
	}
	return false
}

// waitForFill polls the order until it reaches a terminal status. On a
// terminal it shows a spinner with the live status; otherwise it polls
// quietly. A terminal status other than "filled" is reported as an
// error. Interrupting the wait leaves the order on the book.
func waitForFill(ctx context.Context, client *api.Client, order *api.Order) (*api.Order, error) {
	if orderFinished(order.Status) {
		return finishedOrder(order)
	}

	if term.IsTerminal(int(os.Stderr.Fd())) {
		model := newWaitModel(ctx, client, order)
		program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(os.Stderr))
		final, err := program.Run()
		if err != nil {
			return nil, cli.Internal("order status display: %w", err)
		}
		result := final.(waitModel)
		if result.err != nil {
			return nil, cli.WrapAPIError(result.err)
		}
		if result.interrupted {
			return nil, cli.Transient("interrupted while waiting; order %s is still on the book", order.ID)
		}
		return finishedOrder(result.order)
	}

	for {
		select {
		case <-ctx.Done():
			return nil, cli.Transient("interrupted while waiting; order %s is still on the book", order.ID)
		case <-time.After(pollInterval):
		}
		updated, err := client.GetOrder(ctx, order.ID)
		if err != nil {
			return nil, cli.WrapAPIError(err)
		}
		order = updated
		if orderFinished(order.Status) {
			return finishedOrder(order)
		}
	}
}

func finishedOrder(order *api.Order) (*api.Order, error) {
	if order.Status != "filled" {
		return nil, cli.Transient("order %s finished %s without filling", order.ID, order.Status)
	}
	return order, nil
}

const pollInterval = 2 * time.Second

var waitStatusStyle = lipgloss.NewStyle().Faint(true)

// orderUpdateMsg carries one poll result into the wait model.
type orderUpdateMsg struct {
	order *api.Order
	err   error
}

// waitModel is the bubbletea model behind the fill-wait status line.
type waitModel struct {
	ctx     context.Context
	client  *api.Client
	spinner spinner.Model

	order       *api.Order
	err         error
	interrupted bool
}

func newWaitModel(ctx context.Context, client *api.Client, order *api.Order) waitModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return waitModel{ctx: ctx, client: client, spinner: s, order: order}
}

func (m waitModel) pollOrder() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
			return orderUpdateMsg{err: m.ctx.Err()}
		case <-time.After(pollInterval):
		}
		order, err := m.client.GetOrder(m.ctx, m.order.ID)
		return orderUpdateMsg{order: order, err: err}
	}
}

func (m waitModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.pollOrder())
}

func (m waitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.interrupted = true
			return m, tea.Quit
		}
		return m, nil
	case orderUpdateMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.order = msg.order
		if orderFinished(m.order.Status) {
			return m, tea.Quit
		}
		return m, m.pollOrder()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m waitModel) View() string {
	if m.err != nil || m.interrupted || orderFinished(m.order.Status) {
		return ""
	}
	status := waitStatusStyle.Render(fmt.Sprintf("(%s, q to stop waiting)", m.order.Status))
	return fmt.Sprintf("%s waiting for order %s to fill %s\n", m.spinner.View(), m.order.ID, status)
}
