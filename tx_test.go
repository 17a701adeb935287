package safehold

import (
	"testing"

	"github.com/safehold/safehold/errors"
	"github.com/safehold/safehold/safeholdtest/assert"
)

type demoMsg struct {
	Num  int
	Text string
}

func (demoMsg) Path() string { return "demo/path" }

func (m demoMsg) Validate() error {
	if m.Num < 0 {
		return errors.Wrap(errors.ErrMsg, "negative")
	}
	return nil
}

type otherMsg struct{}

func (otherMsg) Path() string    { return "other" }
func (otherMsg) Validate() error { return nil }

type demoTx struct {
	msg Msg
	err error
}

func (tx demoTx) GetMsg() (Msg, error) { return tx.msg, tx.err }

func TestLoadMsg(t *testing.T) {
	cases := map[string]struct {
		tx      Tx
		dest    interface{}
		wantErr *errors.Error
		want    *demoMsg
	}{
		"pointer message": {
			tx:   demoTx{msg: &demoMsg{Num: 3, Text: "x"}},
			dest: &demoMsg{},
			want: &demoMsg{Num: 3, Text: "x"},
		},
		"value message": {
			tx:   demoTx{msg: demoMsg{Num: 4}},
			dest: &demoMsg{},
			want: &demoMsg{Num: 4},
		},
		"invalid message": {
			tx:      demoTx{msg: &demoMsg{Num: -1}},
			dest:    &demoMsg{},
			wantErr: errors.ErrMsg,
		},
		"wrong type": {
			tx:      demoTx{msg: &otherMsg{}},
			dest:    &demoMsg{},
			wantErr: errors.ErrType,
		},
		"destination not a pointer": {
			tx:      demoTx{msg: &demoMsg{}},
			dest:    demoMsg{},
			wantErr: errors.ErrType,
		},
		"no message": {
			tx:      demoTx{},
			dest:    &demoMsg{},
			wantErr: errors.ErrInput,
		},
		"tx failure": {
			tx:      demoTx{err: errors.ErrState},
			dest:    &demoMsg{},
			wantErr: errors.ErrState,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := LoadMsg(tc.tx, tc.dest)
			if !tc.wantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.wantErr, err)
			}
			if tc.want != nil {
				assert.Equal(t, tc.want, tc.dest)
			}
		})
	}
}

func TestGetPath(t *testing.T) {
	assert.Equal(t, "demo/path", GetPath(demoTx{msg: demoMsg{}}))
	assert.Equal(t, "(missing)", GetPath(demoTx{}))
	assert.Equal(t, "(missing)", GetPath(demoTx{err: errors.ErrInput}))
}
