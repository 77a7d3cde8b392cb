package escrow

import (
	quickex "github.com/supreme2580/QiuckEx"
	"github.com/supreme2580/QiuckEx/coin"
	"github.com/supreme2580/QiuckEx/errors"
	"github.com/supreme2580/QiuckEx/orm"
)

const (
	// BucketName contains the commitment records, keyed by digest.
	BucketName = "esc"
	// refBucketName contains the numbered escrow references.
	refBucketName = "escref"
)

var _ orm.CloneableData = (*Escrow)(nil)

// Validate ensures the escrow record is sensible.
func (e *Escrow) Validate() error {
	c := coin.NewCoin(e.Amount, e.Ticker)
	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !c.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "escrow amount must be positive")
	}
	if err := e.Depositor.Validate(); err != nil {
		return errors.Wrap(err, "depositor")
	}
	switch e.Status {
	case Status_PENDING, Status_SPENT:
	default:
		return errors.Wrapf(errors.ErrState, "status %s", e.Status)
	}
	return nil
}

// Copy makes a deep copy of the record.
func (e *Escrow) Copy() orm.CloneableData {
	return &Escrow{
		Ticker:    e.Ticker,
		Amount:    e.Amount,
		Depositor: e.Depositor.Clone(),
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
	}
}

// AsEscrow extracts an *Escrow value or nil from the object.
// Must be called on a Bucket result that is an *Escrow,
// will panic on bad type.
func AsEscrow(obj orm.Object) *Escrow {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*Escrow)
}

// Custody calculates the address holding funds for a given
// commitment digest. Every commitment has its own custody account, so
// balances can be audited per record.
func Custody(digest []byte) quickex.Condition {
	return quickex.NewCondition("escrow", "seal", digest)
}

// Bucket is a type-safe wrapper around orm.Bucket for Escrow records.
type Bucket struct {
	orm.Bucket
}

// NewBucket initializes the escrow bucket.
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, orm.NewSimpleObj(nil, &Escrow{})),
	}
}

// GetEscrow loads the record stored under the digest, or nil when
// absent.
func (b Bucket) GetEscrow(db quickex.ReadOnlyKVStore, digest []byte) (*Escrow, error) {
	obj, err := b.Get(db, digest)
	if err != nil {
		return nil, err
	}
	return AsEscrow(obj), nil
}

// Save persists the record under the digest.
func (b Bucket) Save(db quickex.KVStore, digest []byte, esc *Escrow) error {
	if esc == nil {
		return errors.Wrap(errors.ErrEmpty, "escrow")
	}
	return b.Bucket.Save(db, orm.NewSimpleObj(digest, esc))
}

var _ orm.CloneableData = (*EscrowRef)(nil)

// Validate ensures both parties are set.
func (r *EscrowRef) Validate() error {
	if err := r.Src.Validate(); err != nil {
		return errors.Wrap(err, "src")
	}
	if err := r.Dst.Validate(); err != nil {
		return errors.Wrap(err, "dst")
	}
	return nil
}

// Copy makes a deep copy of the reference.
func (r *EscrowRef) Copy() orm.CloneableData {
	return &EscrowRef{
		Src: r.Src.Clone(),
		Dst: r.Dst.Clone(),
	}
}

// AsEscrowRef extracts an *EscrowRef value or nil from the object.
func AsEscrowRef(obj orm.Object) *EscrowRef {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*EscrowRef)
}

func newRefBucket() orm.Bucket {
	return orm.NewBucket(refBucketName, orm.NewSimpleObj(nil, &EscrowRef{}))
}
