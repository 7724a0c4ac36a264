package valido_test

import (
	"testing"

	"github.com/go-sif/valido/frame"
	"github.com/stretchr/testify/require"
)

func createBasicDataFrame(t *testing.T) *frame.DataFrame {
	schema := frame.CreateSchema()
	schema.CreateColumn("Brand", &frame.StringColumnType{})
	schema.CreateColumn("Price", &frame.Int32ColumnType{})
	df, err := frame.CreateDataFrame(schema,
		[]interface{}{"Honda Civic", int32(22000)},
		[]interface{}{"Toyota Corolla", int32(25000)},
		[]interface{}{"Ford Focus", int32(27000)},
		[]interface{}{"Audi A4", int32(35000)},
	)
	require.Nil(t, err)
	return df
}

func createExtendedDataFrame(t *testing.T) *frame.DataFrame {
	schema := frame.CreateSchema()
	schema.CreateColumn("Brand", &frame.StringColumnType{})
	schema.CreateColumn("Price", &frame.Int32ColumnType{})
	schema.CreateColumn("Year", &frame.Int32ColumnType{})
	df, err := frame.CreateDataFrame(schema,
		[]interface{}{"Honda Civic", int32(22000), int32(2020)},
		[]interface{}{"Toyota Corolla", int32(25000), int32(1998)},
		[]interface{}{"Ford Focus", int32(27000), int32(2001)},
		[]interface{}{"Audi A4", int32(35000), int32(2021)},
	)
	require.Nil(t, err)
	return df
}

func rowsOf(df *frame.DataFrame) [][]interface{} {
	rows := make([][]interface{}, df.NumRows())
	for i := range rows {
		rows[i] = df.Row(i)
	}
	return rows
}
