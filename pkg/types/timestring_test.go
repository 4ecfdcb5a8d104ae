package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "обычное время", input: "09:00", want: "09:00"},
		{name: "формат из БД", input: "14:30:00", want: "14:30"},
		{name: "пробелы", input: " 08:15 ", want: "08:15"},
		{name: "без ведущего нуля", input: "9:00", wantErr: true},
		{name: "часы вне диапазона", input: "25:00", wantErr: true},
		{name: "пустая строка", input: "", wantErr: true},
		{name: "мусор", input: "ab:cd", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := MustTimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), got)

	_, err = MustTimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_AddMinutesWrap(t *testing.T) {
	tests := []struct {
		start   string
		minutes int
		want    TimeString
	}{
		{start: "09:00", minutes: 60, want: "10:00"},
		{start: "17:00", minutes: 240, want: "21:00"},
		{start: "23:30", minutes: 60, want: "00:30"},
		{start: "22:00", minutes: 180, want: "01:00"},
		{start: "00:00", minutes: 24 * 60, want: "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			got, err := MustTimeString(tt.start).AddMinutesWrap(tt.minutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, MustTimeString("08:00").IsBefore("09:00"))
	assert.False(t, MustTimeString("09:00").IsBefore("09:00"))
	assert.True(t, MustTimeString("17:00").IsAfter("08:00"))
}

func TestTimeString_On(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	got := MustTimeString("14:45").On(day)

	assert.Equal(t, time.Date(2024, 3, 10, 14, 45, 0, 0, time.UTC), got)
}

func TestTimeString_ScanValue(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan([]byte("16:00:00")))
	assert.Equal(t, TimeString("16:00"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 8, 5, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("08:05"), ts)

	assert.Error(t, ts.Scan(42))

	v, err := TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = TimeString("12:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "12:00", v)
}
