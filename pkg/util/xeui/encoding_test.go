package xeui

import (
	"database/sql/driver"
	"encoding/json"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type device struct {
	MAC EUI48  `json:"mac" yaml:"mac" cbor:"mac"`
	EUI EUI64  `json:"eui" yaml:"eui" cbor:"eui"`
	Ptr *EUI48 `json:"ptr,omitempty" yaml:"ptr,omitempty" cbor:"ptr,omitempty"`
}

func TestText(t *testing.T) {
	text, err := sample48.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "0A-1B-2C-3D-4E-5F", string(text))

	var a EUI48
	require.NoError(t, a.UnmarshalText([]byte("0a1b.2c3d.4e5f")))
	assert.Equal(t, sample48, a)

	require.NoError(t, a.UnmarshalText(nil))
	assert.True(t, a.IsZero())

	b := sample64
	err = b.UnmarshalText([]byte("00-FF-0A"))
	assert.ErrorIs(t, err, ErrInvalidStringLength)
	assert.Equal(t, sample64, b, "failed unmarshal must not modify receiver")
}

func TestJSON(t *testing.T) {
	in := device{MAC: sample48, EUI: sample64}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"mac":"0A-1B-2C-3D-4E-5F","eui":"00-FF-0A-1B-2C-3D-4E-5F"}`, string(data))

	var out device
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	t.Run("any_notation", func(t *testing.T) {
		var d device
		require.NoError(t, json.Unmarshal([]byte(`{"mac":"0a:1b:2c:3d:4e:5f","eui":"00ff.0a1b.2c3d.4e5f"}`), &d))
		assert.Equal(t, sample48, d.MAC)
		assert.Equal(t, sample64, d.EUI)
	})

	t.Run("null_and_empty", func(t *testing.T) {
		d := device{MAC: sample48, EUI: sample64}
		require.NoError(t, json.Unmarshal([]byte(`{"mac":null,"eui":""}`), &d))
		assert.True(t, d.MAC.IsZero())
		assert.True(t, d.EUI.IsZero())
	})

	t.Run("zero_value_formats", func(t *testing.T) {
		data, err := json.Marshal(EUI48{})
		require.NoError(t, err)
		assert.Equal(t, `"00-00-00-00-00-00"`, string(data))
	})

	t.Run("errors", func(t *testing.T) {
		var d device
		err := json.Unmarshal([]byte(`{"mac":"0A-1B-2C-3D-4x-5F"}`), &d)
		assert.ErrorIs(t, err, ErrInvalidHexCharacter)

		var a EUI48
		err = a.UnmarshalJSON([]byte(`123`))
		assert.Error(t, err)
	})
}

func TestYAML(t *testing.T) {
	in := device{MAC: sample48, EUI: sample64}
	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mac: 0A-1B-2C-3D-4E-5F")

	var out device
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	err = yaml.Unmarshal([]byte("mac: 0A-1B-2C-3D-4E-5\n"), &out)
	assert.ErrorIs(t, err, ErrOddLength)
}

func TestBinary(t *testing.T) {
	data, err := sample48.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0A, 0x1B, 0x2C, 0x3D, 0x4E, 0x5F}, data)

	var a EUI48
	require.NoError(t, a.UnmarshalBinary(data))
	assert.Equal(t, sample48, a)
	assert.ErrorIs(t, a.UnmarshalBinary([]byte{1, 2}), ErrInvalidStringLength)

	data, err = sample64.MarshalBinary()
	require.NoError(t, err)
	var b EUI64
	require.NoError(t, b.UnmarshalBinary(data))
	assert.Equal(t, sample64, b)
}

func TestCBOR(t *testing.T) {
	data, err := cbor.Marshal(sample48)
	require.NoError(t, err)
	// major type 2 (byte string), length 6
	assert.Equal(t, []byte{0x46, 0x0A, 0x1B, 0x2C, 0x3D, 0x4E, 0x5F}, data)

	var a EUI48
	require.NoError(t, cbor.Unmarshal(data, &a))
	assert.Equal(t, sample48, a)

	ptr := sample48
	in := device{MAC: sample48, EUI: sample64, Ptr: &ptr}
	data, err = cbor.Marshal(in)
	require.NoError(t, err)
	var out device
	require.NoError(t, cbor.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	t.Run("wrong_length", func(t *testing.T) {
		short, err := cbor.Marshal([]byte{1, 2, 3})
		require.NoError(t, err)
		var b EUI64
		assert.ErrorIs(t, b.UnmarshalCBOR(short), ErrInvalidStringLength)
	})

	t.Run("null", func(t *testing.T) {
		b := sample64
		require.NoError(t, b.UnmarshalCBOR([]byte{0xf6}))
		assert.True(t, b.IsZero())
	})

	t.Run("not_bytes", func(t *testing.T) {
		text, err := cbor.Marshal("0A-1B-2C-3D-4E-5F")
		require.NoError(t, err)
		var b EUI48
		assert.Error(t, b.UnmarshalCBOR(text))
	})
}

func TestSQL(t *testing.T) {
	v, err := sample48.Value()
	require.NoError(t, err)
	assert.Equal(t, driver.Value("0A-1B-2C-3D-4E-5F"), v)

	v, err = sample64.Value()
	require.NoError(t, err)
	assert.Equal(t, driver.Value("00-FF-0A-1B-2C-3D-4E-5F"), v)

	tests := []struct {
		name    string
		src     any
		want    EUI48
		wantErr error
	}{
		{"string", "0A:1B:2C:3D:4E:5F", sample48, nil},
		{"text_bytes", []byte("0a1b.2c3d.4e5f"), sample48, nil},
		{"raw_bytes", []byte{0x0A, 0x1B, 0x2C, 0x3D, 0x4E, 0x5F}, sample48, nil},
		{"nil", nil, EUI48{}, nil},
		{"empty_string", "", EUI48{}, nil},
		{"bad_string", "0A-1B-2C", EUI48{}, ErrInvalidStringLength},
		{"unsupported", 42, EUI48{}, ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a EUI48
			err := a.Scan(tt.src)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}

	var b EUI64
	require.NoError(t, b.Scan([]byte{0x00, 0xFF, 0x0A, 0x1B, 0x2C, 0x3D, 0x4E, 0x5F}))
	assert.Equal(t, sample64, b)
}

func TestNilReceiver(t *testing.T) {
	var a *EUI48
	assert.ErrorIs(t, a.UnmarshalText([]byte("x")), ErrNilReceiver)
	assert.ErrorIs(t, a.UnmarshalJSON([]byte(`"x"`)), ErrNilReceiver)
	assert.ErrorIs(t, a.UnmarshalBinary([]byte{1}), ErrNilReceiver)
	assert.ErrorIs(t, a.UnmarshalCBOR([]byte{0xf6}), ErrNilReceiver)
	assert.ErrorIs(t, a.Scan(nil), ErrNilReceiver)

	var b *EUI64
	assert.ErrorIs(t, b.UnmarshalText([]byte("x")), ErrNilReceiver)
	assert.ErrorIs(t, b.UnmarshalJSON([]byte(`"x"`)), ErrNilReceiver)
	assert.ErrorIs(t, b.UnmarshalBinary([]byte{1}), ErrNilReceiver)
	assert.ErrorIs(t, b.UnmarshalCBOR([]byte{0xf6}), ErrNilReceiver)
	assert.ErrorIs(t, b.Scan(nil), ErrNilReceiver)
}
