package privacy

import (
	quickex "github.com/supreme2580/QiuckEx"
	"github.com/supreme2580/QiuckEx/errors"
	"github.com/supreme2580/QiuckEx/orm"
)

// BucketName contains the per account settings, keyed by address.
const BucketName = "priv"

var _ orm.CloneableData = (*Settings)(nil)

// Validate accepts any level, the value is application defined.
func (s *Settings) Validate() error {
	return nil
}

// Copy makes a deep copy of the settings.
func (s *Settings) Copy() orm.CloneableData {
	return &Settings{
		Level:   s.Level,
		Enabled: s.Enabled,
		History: append([]uint32(nil), s.History...),
	}
}

// AsSettings extracts a *Settings value or nil from the object.
func AsSettings(obj orm.Object) *Settings {
	if obj == nil || obj.Value() == nil {
		return nil
	}
	return obj.Value().(*Settings)
}

// Bucket is a type-safe wrapper around orm.Bucket for Settings.
type Bucket struct {
	orm.Bucket
}

// NewBucket initializes the privacy bucket.
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, orm.NewSimpleObj(nil, &Settings{})),
	}
}

// GetSettings loads the settings of the account, or nil when the
// account never touched its privacy state.
func (b Bucket) GetSettings(db quickex.ReadOnlyKVStore, account quickex.Address) (*Settings, error) {
	obj, err := b.Get(db, account)
	if err != nil {
		return nil, err
	}
	return AsSettings(obj), nil
}

// Save persists the settings under the account address.
func (b Bucket) Save(db quickex.KVStore, account quickex.Address, s *Settings) error {
	if s == nil {
		return errors.Wrap(errors.ErrEmpty, "settings")
	}
	if err := account.Validate(); err != nil {
		return errors.Wrap(err, "account")
	}
	return b.Bucket.Save(db, orm.NewSimpleObj(account, s))
}
