package utils

import (
	"github.com/safehold/safehold"
	"github.com/safehold/safehold/errors"
)

// ActionKey is the tag under which ActionTagger records the message path.
// Searching for action='escrow/refund' finds every refund.
const ActionKey = "action"

// ActionTagger tags every successful delivery with its message path.
// Transactions without a message are rejected before the handler runs.
type ActionTagger struct{}

var _ safehold.Decorator = ActionTagger{}

func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

func (ActionTagger) Check(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx, next safehold.Checker) (*safehold.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

func (ActionTagger) Deliver(ctx safehold.Context, db safehold.KVStore, tx safehold.Tx, next safehold.Deliverer) (*safehold.DeliverResult, error) {
	msg, err := tx.GetMsg()
	switch {
	case err != nil:
		return nil, err
	case msg == nil:
		return nil, errors.Wrap(errors.ErrInput, "no message")
	}
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.Tags = append(res.Tags, safehold.Tag([]byte(ActionKey), []byte(msg.Path())))
	return res, nil
}
