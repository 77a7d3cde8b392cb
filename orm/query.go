package orm

import (
	quickex "github.com/supreme2580/QiuckEx"
)

// prefixRange turns a prefix into (start, end) to create
// and iterator over the whole prefixed domain.
//
// In case of an overflow the end is set to nil.
// nil is allowed as prefix and means iterate over everything.
func prefixRange(prefix []byte) ([]byte, []byte) {
	if prefix == nil {
		return nil, nil
	}

	// copy the prefix and update last byte
	end := make([]byte, len(prefix))
	copy(end, prefix)
	l := len(end) - 1
	end[l]++

	// wait, what if that overflowed the last byte?
	for end[l] == 0 {
		if l == 0 {
			// overflow of the whole domain
			return prefix, nil
		}
		l--
		end[l]++
	}
	return prefix, end
}

// queryPrefix returns all models stored under keys matching
// the given prefix, in ascending key order.
func queryPrefix(db quickex.ReadOnlyKVStore, prefix []byte) ([]quickex.Model, error) {
	start, end := prefixRange(prefix)
	itr, err := db.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	return ConsumeIterator(itr)
}

// ConsumeIterator will read all remaining data into an
// array and close the iterator
func ConsumeIterator(itr quickex.Iterator) ([]quickex.Model, error) {
	defer itr.Close()

	var res []quickex.Model
	for itr.Valid() {
		res = append(res, quickex.Model{
			Key:   itr.Key(),
			Value: itr.Value(),
		})
		if err := itr.Next(); err != nil {
			return nil, err
		}
	}
	return res, nil
}
