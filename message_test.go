package protowire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kolesnikovae/protowire"
)

func TestMessageEachIteratesTopLevelFields(t *testing.T) {
	w := protowire.NewWriter(0)
	w.WriteVarintField(1, 10)
	w.WriteStringField(2, "abc")
	w.WriteFixed64Field(3, 0xFF)

	type seen struct {
		field int32
		wt    protowire.WireType
	}
	var got []seen

	r := protowire.NewReader(w.Bytes())
	err := protowire.MessageEach(r, func(fieldNum int32, v protowire.Value) (bool, error) {
		got = append(got, seen{fieldNum, v.WireType})
		return true, nil
	})
	require.NoError(t, err)
	require.Equal(t, []seen{
		{1, protowire.WireVarint},
		{2, protowire.WireBytes},
		{3, protowire.WireFixed64},
	}, got)
}

func TestMessageEachStopsEarly(t *testing.T) {
	w := protowire.NewWriter(0)
	w.WriteVarintField(1, 1)
	w.WriteVarintField(2, 2)
	w.WriteVarintField(3, 3)

	var count int
	r := protowire.NewReader(w.Bytes())
	err := protowire.MessageEach(r, func(fieldNum int32, v protowire.Value) (bool, error) {
		count++
		return fieldNum != 2, nil
	})
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestMessageEachRejectsGroupWireType(t *testing.T) {
	w := protowire.NewWriter(0)
	w.BeginGroup(1)
	w.EndGroup(1)

	r := protowire.NewReader(w.Bytes())
	err := protowire.MessageEach(r, func(fieldNum int32, v protowire.Value) (bool, error) {
		return true, nil
	})
	require.Error(t, err)
}

func TestValueAccessors(t *testing.T) {
	w := protowire.NewWriter(0)
	w.WriteZigZagField(1, -7)
	w.WriteFloatField(2, 2.5)

	var sint int64
	var f32 float32

	r := protowire.NewReader(w.Bytes())
	err := protowire.MessageEach(r, func(fieldNum int32, v protowire.Value) (bool, error) {
		switch fieldNum {
		case 1:
			sint = v.AsSint64()
		case 2:
			f32 = v.AsFloat32()
		}
		return true, nil
	})
	require.NoError(t, err)
	require.Equal(t, int64(-7), sint)
	require.Equal(t, float32(2.5), f32)
}
