package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/inventory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

type debit struct {
	lineID   kernel.UUID
	quantity int
}

// credit adds quantity of template's SKU to a warehouse. The warehouse line is
// created from template when the warehouse does not stock the SKU yet.
type credit struct {
	template    *inventory.Line
	warehouseID kernel.UUID
	quantity    int
}

// ledger posts debits and credits against inventory lines inside the current
// unit of work. Every line it touches is locked first, in ascending id order.
type ledger struct {
	repo ports.InventoryRepository
}

func newLedger(repo ports.InventoryRepository) ledger {
	return ledger{repo: repo}
}

// post applies all debits, then all credits. It returns the line each credit
// landed on, index for index. On error nothing has been written.
func (l ledger) post(ctx context.Context, debits []debit, credits []credit) ([]*inventory.Line, error) {
	targets := make([]*kernel.UUID, len(credits))
	ids := make([]kernel.UUID, 0, len(debits)+len(credits))
	for _, d := range debits {
		ids = append(ids, d.lineID)
	}
	for i, c := range credits {
		existing, err := l.repo.FindBySKU(ctx, c.warehouseID, c.template.SKU())
		if errors.Is(err, errs.ErrObjectNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		id := existing.ID()
		targets[i] = &id
		ids = append(ids, id)
	}

	locked, err := l.lock(ctx, ids)
	if err != nil {
		return nil, err
	}

	touched := make(map[kernel.UUID]*inventory.Line)
	for _, d := range debits {
		line := locked[d.lineID]
		if err = line.Withdraw(d.quantity); err != nil {
			return nil, err
		}
		touched[line.ID()] = line
	}

	var created []*inventory.Line
	landed := make([]*inventory.Line, len(credits))
	for i, c := range credits {
		line, isNew, creditErr := l.creditLine(c, targets[i], locked, created)
		if creditErr != nil {
			return nil, creditErr
		}
		if isNew {
			created = append(created, line)
		} else if !containsLine(created, line) {
			touched[line.ID()] = line
		}
		landed[i] = line
	}

	for _, line := range touched {
		if err = l.repo.Update(ctx, line); err != nil {
			return nil, err
		}
	}
	for _, line := range created {
		if err = l.repo.Add(ctx, line); err != nil {
			return nil, err
		}
	}

	return landed, nil
}

func (l ledger) lock(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*inventory.Line, error) {
	locked := make(map[kernel.UUID]*inventory.Line, len(ids))
	if len(ids) == 0 {
		return locked, nil
	}
	lines, err := l.repo.LockMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		locked[line.ID()] = line
	}
	return locked, nil
}

func (l ledger) creditLine(
	c credit,
	target *kernel.UUID,
	locked map[kernel.UUID]*inventory.Line,
	created []*inventory.Line,
) (*inventory.Line, bool, error) {
	if target != nil {
		line := locked[*target]
		return line, false, line.Deposit(c.quantity)
	}
	for _, line := range created {
		if line.BelongsTo(c.warehouseID) && line.SKU() == c.template.SKU() {
			return line, false, line.Deposit(c.quantity)
		}
	}
	line, err := c.template.Replicate(kernel.NewUUID(), c.warehouseID, c.quantity)
	return line, true, err
}

func containsLine(lines []*inventory.Line, line *inventory.Line) bool {
	for _, l := range lines {
		if l.ID().IsEqual(line.ID()) {
			return true
		}
	}
	return false
}
