package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "ok", input: `{"dueDate":"2024-05-10"}`, want: time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)},
		{name: "null", input: `{"dueDate":null}`},
		{name: "missing", input: `{}`},
		{name: "err. timestamp", input: `{"dueDate":"2024-05-10T10:00:00Z"}`, wantErr: true},
		{name: "err. format", input: `{"dueDate":"10.05.2024"}`, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var req model.IssueRequest
			err := json.Unmarshal([]byte(tt.input), &req)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.True(t, tt.want.Equal(req.DueDate.Time))
		})
	}
}

func TestDate_EndOfDay(t *testing.T) {
	d := model.Date{Time: time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)}
	require.Equal(t, time.Date(2024, time.May, 10, 23, 59, 59, 0, time.UTC), d.EndOfDay())

	b, err := json.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, `"2024-05-10"`, string(b))
}

func TestReservationFilterValues(t *testing.T) {
	require.True(t, model.SortDueDesc.Valid())
	require.False(t, model.ReservationSort("author").Valid())
	require.True(t, model.PhaseReturned.Valid())
	require.False(t, model.Phase("Lost").Valid())
	require.True(t, model.CopyDamaged.Manual())
	require.False(t, model.CopyRented.Manual())
}
