package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/safehold/safehold"
	"github.com/safehold/safehold/errors"
)

// resultsField is the protobuf key of the repeated bytes field 1.
const resultsField = 1<<3 | 2

// ResultSet is the query response format. It is encoded as a protobuf
// message with a single repeated bytes field, so any protobuf client can
// read it.
type ResultSet struct {
	Results [][]byte
}

// Marshal encodes the set.
func (r *ResultSet) Marshal() ([]byte, error) {
	buf := proto.NewBuffer(nil)
	for _, res := range r.Results {
		if err := buf.EncodeVarint(resultsField); err != nil {
			return nil, errors.Wrap(errors.ErrInput, err.Error())
		}
		if err := buf.EncodeRawBytes(res); err != nil {
			return nil, errors.Wrap(errors.ErrInput, err.Error())
		}
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a set encoded with Marshal.
func (r *ResultSet) Unmarshal(raw []byte) error {
	var results [][]byte
	for len(raw) > 0 {
		key, n := proto.DecodeVarint(raw)
		if n == 0 || key != resultsField {
			return errors.Wrapf(errors.ErrInput, "unexpected field key %d", key)
		}
		raw = raw[n:]
		size, n := proto.DecodeVarint(raw)
		if n == 0 || uint64(len(raw)-n) < size {
			return errors.Wrap(errors.ErrInput, "truncated result")
		}
		raw = raw[n:]
		res := make([]byte, size)
		copy(res, raw[:size])
		results = append(results, res)
		raw = raw[size:]
	}
	r.Results = results
	return nil
}

// ResultsFromKeys returns a ResultSet of all keys
// given a set of models
func ResultsFromKeys(models []safehold.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Key
	}
	return &ResultSet{Results: res}
}

// ResultsFromValues returns a ResultSet of all values
// given a set of models
func ResultsFromValues(models []safehold.Model) *ResultSet {
	res := make([][]byte, len(models))
	for i, m := range models {
		res[i] = m.Value
	}
	return &ResultSet{Results: res}
}

// JoinResults inverts ResultsFromKeys and ResultsFromValues
// and makes then a consistent whole again
func JoinResults(keys, values *ResultSet) ([]safehold.Model, error) {
	kref, vref := keys.Results, values.Results
	if len(kref) != len(vref) {
		return nil, errors.Wrapf(errors.ErrInput, "%d keys for %d values", len(kref), len(vref))
	}
	mods := make([]safehold.Model, len(kref))
	for i := range mods {
		mods[i] = safehold.Model{
			Key:   kref[i],
			Value: vref[i],
		}
	}
	return mods, nil
}

// DecodeModels parses the key and value sets of a query response.
func DecodeModels(keys, values []byte) ([]safehold.Model, error) {
	var k, v ResultSet
	if err := k.Unmarshal(keys); err != nil {
		return nil, errors.Wrap(err, "cannot unmarshal keys")
	}
	if err := v.Unmarshal(values); err != nil {
		return nil, errors.Wrap(err, "cannot unmarshal values")
	}
	return JoinResults(&k, &v)
}
