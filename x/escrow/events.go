package escrow

import (
	"encoding/hex"
	"encoding/json"

	"github.com/safehold/safehold"
	"github.com/safehold/safehold/coin"
	"github.com/safehold/safehold/errors"
	"github.com/safehold/safehold/orm"
	"github.com/tendermint/tendermint/libs/common"
)

// EventBucketName is where the escrow notifications are stored.
const EventBucketName = "escrowevt"

// EventKind tells which transition an Event records.
type EventKind int32

const (
	EventCreated EventKind = iota + 1
	EventDeposited
	EventSellerConfirmed
	EventBuyerAccepted
	EventRefunded
)

var eventNames = map[EventKind]string{
	EventCreated:         "created",
	EventDeposited:       "deposited",
	EventSellerConfirmed: "seller_confirmed",
	EventBuyerAccepted:   "buyer_accepted",
	EventRefunded:        "refunded",
}

func (k EventKind) String() string {
	if n, ok := eventNames[k]; ok {
		return n
	}
	return "unknown"
}

func (k EventKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Event is a notification emitted by a successful escrow operation. Only
// the parties relevant to the kind are set:
//
//   created           buyer, seller, amount
//   deposited         buyer, amount
//   seller_confirmed  seller
//   buyer_accepted    buyer
//   refunded          buyer
type Event struct {
	Metadata *safehold.Metadata `json:"metadata"`
	EscrowID []byte             `json:"escrow_id"`
	Kind     EventKind          `json:"kind"`
	Buyer    safehold.Address   `json:"buyer,omitempty"`
	Seller   safehold.Address   `json:"seller,omitempty"`
	Amount   coin.Amount        `json:"amount"`
	// Time is the block time of the operation, zero at genesis.
	Time safehold.UnixTime `json:"time"`
}

var _ orm.Model = (*Event)(nil)

func (ev *Event) Validate() error {
	if err := ev.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(ev.EscrowID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "escrow id")
	}
	if _, ok := eventNames[ev.Kind]; !ok {
		return errors.Wrapf(errors.ErrInput, "unknown event kind %d", int32(ev.Kind))
	}
	return nil
}

// Tags returns the representation of this event indexed by tendermint.
func (ev *Event) Tags() []common.KVPair {
	return []common.KVPair{
		safehold.Tag([]byte("escrow.id"), []byte(hex.EncodeToString(ev.EscrowID))),
		safehold.Tag([]byte("escrow.event"), []byte(ev.Kind.String())),
	}
}

// EventLog is an append only list of events per escrow. Events of a
// single escrow are stored under the escrow id followed by the position.
type EventLog struct {
	bucket orm.ModelBucket
}

var _ safehold.QueryHandler = EventLog{}

// NewEventLog returns the log stored in the escrowevt bucket.
func NewEventLog() EventLog {
	return EventLog{
		bucket: orm.NewModelBucket(EventBucketName, &Event{}, cdc),
	}
}

func (l EventLog) counter(escrowID []byte) orm.Sequence {
	return orm.NewSequence(EventBucketName, hex.EncodeToString(escrowID))
}

func eventKey(escrowID, pos []byte) []byte {
	key := make([]byte, 0, len(escrowID)+len(pos))
	key = append(key, escrowID...)
	return append(key, pos...)
}

// Append stores the event at the end of its escrow list.
func (l EventLog) Append(db safehold.KVStore, ev *Event) error {
	pos, err := l.counter(ev.EscrowID).NextVal(db)
	if err != nil {
		return errors.Wrap(err, "event position")
	}
	if _, err := l.bucket.Put(db, eventKey(ev.EscrowID, pos), ev); err != nil {
		return errors.Wrap(err, "cannot store event")
	}
	return nil
}

// List returns all events of an escrow, oldest first.
func (l EventLog) List(db safehold.ReadOnlyKVStore, escrowID []byte) ([]*Event, error) {
	n, err := l.counter(escrowID).Latest(db)
	if err != nil {
		return nil, errors.Wrap(err, "event count")
	}
	events := make([]*Event, 0, n)
	for i := int64(1); i <= n; i++ {
		var ev Event
		if err := l.bucket.One(db, eventKey(escrowID, orm.EncodeSequence(i)), &ev); err != nil {
			return nil, errors.Wrapf(err, "event %d", i)
		}
		events = append(events, &ev)
	}
	return events, nil
}

// Query returns all stored events of the escrow with the id given as data.
func (l EventLog) Query(db safehold.ReadOnlyKVStore, mod string, data []byte) ([]safehold.Model, error) {
	if mod != safehold.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unknown mod: %s", mod)
	}
	n, err := l.counter(data).Latest(db)
	if err != nil {
		return nil, err
	}
	var res []safehold.Model
	for i := int64(1); i <= n; i++ {
		models, err := l.bucket.Query(db, safehold.KeyQueryMod, eventKey(data, orm.EncodeSequence(i)))
		if err != nil {
			return nil, err
		}
		res = append(res, models...)
	}
	return res, nil
}

// DecodeEvent parses an event as returned by the /escrows/events query.
func DecodeEvent(raw []byte) (*Event, error) {
	var ev Event
	if err := cdc.UnmarshalBinaryBare(raw, &ev); err != nil {
		return nil, errors.Wrap(errors.ErrModel, err.Error())
	}
	return &ev, nil
}
