package frame

import (
	"testing"
	"time"

	"github.com/go-sif/valido"
	"github.com/go-sif/valido/errors"
	"github.com/stretchr/testify/require"
)

func carsSchema(withYear bool) *Schema {
	schema := CreateSchema()
	schema.CreateColumn("Brand", &StringColumnType{})
	schema.CreateColumn("Price", &Int32ColumnType{})
	if withYear {
		schema.CreateColumn("Year", &Int32ColumnType{})
	}
	return schema
}

func createCars(t *testing.T) *DataFrame {
	df, err := CreateDataFrame(carsSchema(false),
		[]interface{}{"Honda Civic", int32(22000)},
		[]interface{}{"Toyota Corolla", int32(25000)},
		[]interface{}{"Ford Focus", int32(27000)},
		[]interface{}{"Audi A4", int32(35000)},
	)
	require.Nil(t, err)
	return df
}

func createExtendedCars(t *testing.T) *DataFrame {
	df, err := CreateDataFrame(carsSchema(true),
		[]interface{}{"Honda Civic", int32(22000), int32(2020)},
		[]interface{}{"Toyota Corolla", int32(25000), int32(1998)},
		[]interface{}{"Ford Focus", int32(27000), int32(2001)},
		[]interface{}{"Audi A4", int32(35000), int32(2021)},
	)
	require.Nil(t, err)
	return df
}

func TestDataFrameShape(t *testing.T) {
	df := createCars(t)
	var _ valido.DataFrame = df
	require.Equal(t, []string{"Brand", "Price"}, df.ColumnNames())
	require.Equal(t, []valido.ColumnDtype{
		{Name: "Brand", Dtype: "string"},
		{Name: "Price", Dtype: "int"},
	}, df.ColumnDtypes())
	require.Equal(t, 4, df.NumRows())
}

func TestCreateDataFrameIncompatibleRow(t *testing.T) {
	_, err := CreateDataFrame(carsSchema(false), []interface{}{"Honda Civic"})
	require.Equal(t, errors.IncompatibleRowError{Expected: 2, Got: 1}, err)
}

func TestCreateDataFrameWrongValueType(t *testing.T) {
	_, err := CreateDataFrame(carsSchema(false), []interface{}{"Honda Civic", 22000})
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "column Price")
}

func TestCreateDataFrameNilValue(t *testing.T) {
	df, err := CreateDataFrame(carsSchema(false), []interface{}{nil, int32(1)})
	require.Nil(t, err)
	v, err := df.Value(0, "Brand")
	require.Nil(t, err)
	require.Nil(t, v)
}

func TestSelect(t *testing.T) {
	df := createExtendedCars(t)
	selected, err := df.Select("Year", "Brand")
	require.Nil(t, err)
	require.Equal(t, []string{"Year", "Brand"}, selected.ColumnNames())
	require.Equal(t, []interface{}{int32(2020), "Honda Civic"}, selected.Row(0))
	// the original is untouched
	require.Equal(t, []string{"Brand", "Price", "Year"}, df.ColumnNames())

	_, err = df.Select("Color")
	require.Equal(t, errors.MissingColumnInSchemaError{Name: "Color"}, err)
}

func TestJoin(t *testing.T) {
	cars := createCars(t)
	extended := createExtendedCars(t)
	joined, err := cars.Join(extended, "Brand", "Price")
	require.Nil(t, err)
	require.Equal(t, []string{"Brand", "Price", "Year"}, joined.ColumnNames())
	require.Equal(t, 4, joined.NumRows())
	rows := make([][]interface{}, joined.NumRows())
	for i := range rows {
		rows[i] = joined.Row(i)
	}
	require.ElementsMatch(t, [][]interface{}{
		{"Honda Civic", int32(22000), int32(2020)},
		{"Toyota Corolla", int32(25000), int32(1998)},
		{"Ford Focus", int32(27000), int32(2001)},
		{"Audi A4", int32(35000), int32(2021)},
	}, rows)
}

func TestJoinPartialMatch(t *testing.T) {
	cars := createCars(t)
	extended, err := CreateDataFrame(carsSchema(true),
		[]interface{}{"Honda Civic", int32(22000), int32(2020)},
		[]interface{}{"Honda Civic", int32(22000), int32(2019)},
		[]interface{}{"Audi A4", int32(99999), int32(2021)},
		[]interface{}{nil, int32(25000), int32(1998)},
	)
	require.Nil(t, err)
	joined, err := cars.Join(extended, "Brand", "Price")
	require.Nil(t, err)
	require.Equal(t, 2, joined.NumRows())
	require.Equal(t, []interface{}{"Honda Civic", int32(22000), int32(2020)}, joined.Row(0))
	require.Equal(t, []interface{}{"Honda Civic", int32(22000), int32(2019)}, joined.Row(1))
}

func TestJoinErrors(t *testing.T) {
	cars := createCars(t)
	extended := createExtendedCars(t)

	_, err := cars.Join(extended)
	require.NotNil(t, err)

	_, err = cars.Join(extended, "Year")
	require.Equal(t, errors.MissingColumnInSchemaError{Name: "Year"}, err)

	// a non-key column present on both sides
	_, err = cars.Join(extended, "Brand")
	require.NotNil(t, err)

	wide, err := CreateDataFrame(func() *Schema {
		s := CreateSchema()
		s.CreateColumn("Brand", &StringColumnType{})
		s.CreateColumn("Price", &Int64ColumnType{})
		return s
	}())
	require.Nil(t, err)
	_, err = cars.Join(wide, "Brand", "Price")
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "dtype int on the left and bigint on the right")
}

func TestCreateDataFrameCopiesRows(t *testing.T) {
	row := []interface{}{"Honda Civic", int32(22000)}
	df, err := CreateDataFrame(carsSchema(false), row)
	require.Nil(t, err)
	row[0] = "Ford Focus"
	require.Equal(t, []interface{}{"Honda Civic", int32(22000)}, df.Row(0))
}

func TestRowString(t *testing.T) {
	df, err := CreateDataFrame(carsSchema(false), []interface{}{nil, int32(22000)})
	require.Nil(t, err)
	require.Equal(t, `{"Brand": nil,"Price": 22000,}`, df.RowString(0))
}

func TestBytesToString(t *testing.T) {
	colType := &BytesColumnType{}
	require.Equal(t, "[12]", colType.ToString([]byte{1, 2}))
	require.Equal(t, "[12345... 2 more]", colType.ToString([]byte{1, 2, 3, 4, 5, 6, 7}))
}

func TestRename(t *testing.T) {
	df := createCars(t)
	renamed, err := df.Rename("Price", "Cost")
	require.Nil(t, err)
	require.Equal(t, []string{"Brand", "Cost"}, renamed.ColumnNames())
	require.Equal(t, []interface{}{"Honda Civic", int32(22000)}, renamed.Row(0))
	require.Equal(t, []string{"Brand", "Price"}, df.ColumnNames())

	_, err = df.Rename("Color", "Colour")
	require.Equal(t, errors.MissingColumnInSchemaError{Name: "Color"}, err)
	_, err = df.Rename("Price", "Brand")
	require.NotNil(t, err)
}

func TestDrop(t *testing.T) {
	df := createExtendedCars(t)
	dropped, err := df.Drop("Price")
	require.Nil(t, err)
	require.Equal(t, []string{"Brand", "Year"}, dropped.ColumnNames())
	require.Equal(t, []interface{}{"Honda Civic", int32(2020)}, dropped.Row(0))
	// the original is untouched
	require.Equal(t, []string{"Brand", "Price", "Year"}, df.ColumnNames())

	dropped, err = df.Drop("Brand", "Year")
	require.Nil(t, err)
	require.Equal(t, []string{"Price"}, dropped.ColumnNames())
	require.Equal(t, []interface{}{int32(25000)}, dropped.Row(1))

	_, err = df.Drop("Color")
	require.Equal(t, errors.MissingColumnInSchemaError{Name: "Color"}, err)
}

func TestUnion(t *testing.T) {
	df := createCars(t)
	union, err := df.Union(df)
	require.Nil(t, err)
	require.Equal(t, 8, union.NumRows())
	require.Equal(t, df.Row(0), union.Row(4))

	_, err = df.Union(createExtendedCars(t))
	require.NotNil(t, err)
}

func TestJoinFloatKeysCompareExactly(t *testing.T) {
	schema := func(other string) *Schema {
		s := CreateSchema()
		s.CreateColumn("Ratio", &Float64ColumnType{})
		s.CreateColumn(other, &StringColumnType{})
		return s
	}
	left, err := CreateDataFrame(schema("Left"), []interface{}{0.1234561, "a"})
	require.Nil(t, err)
	right, err := CreateDataFrame(schema("Right"),
		[]interface{}{0.1234564, "b"},
		[]interface{}{0.1234561, "c"},
	)
	require.Nil(t, err)
	joined, err := left.Join(right, "Ratio")
	require.Nil(t, err)
	require.Equal(t, 1, joined.NumRows())
	require.Equal(t, []interface{}{0.1234561, "a", "c"}, joined.Row(0))
}

func TestJoinMultiKeyWithSeparatorInValues(t *testing.T) {
	schema := func(other string) *Schema {
		s := CreateSchema()
		s.CreateColumn("K1", &StringColumnType{})
		s.CreateColumn("K2", &StringColumnType{})
		s.CreateColumn(other, &Int32ColumnType{})
		return s
	}
	left, err := CreateDataFrame(schema("Left"), []interface{}{"x\"\x00\"y", "z", int32(1)})
	require.Nil(t, err)
	right, err := CreateDataFrame(schema("Right"),
		[]interface{}{"x", "y\"\x00\"z", int32(2)},
		[]interface{}{"x\"\x00\"y", "z", int32(3)},
	)
	require.Nil(t, err)
	joined, err := left.Join(right, "K1", "K2")
	require.Nil(t, err)
	require.Equal(t, 1, joined.NumRows())
	require.Equal(t, []interface{}{"x\"\x00\"y", "z", int32(1), int32(3)}, joined.Row(0))
}

func TestJoinTimeAndBytesKeys(t *testing.T) {
	schema := func(other string) *Schema {
		s := CreateSchema()
		s.CreateColumn("At", &TimeColumnType{})
		s.CreateColumn("ID", &BytesColumnType{})
		s.CreateColumn(other, &BoolColumnType{})
		return s
	}
	at := time.Date(2021, 3, 4, 5, 6, 7, 8, time.UTC)
	left, err := CreateDataFrame(schema("Left"), []interface{}{at, []byte{1, 2, 3, 4, 5, 6, 7}, true})
	require.Nil(t, err)
	right, err := CreateDataFrame(schema("Right"),
		// the same instant in another zone
		[]interface{}{at.In(time.FixedZone("UTC+2", 2*60*60)), []byte{1, 2, 3, 4, 5, 6, 7}, false},
		// differs only after the bytes shown by ToString
		[]interface{}{at, []byte{1, 2, 3, 4, 5, 6, 8}, true},
		[]interface{}{at.Add(time.Nanosecond), []byte{1, 2, 3, 4, 5, 6, 7}, true},
	)
	require.Nil(t, err)
	joined, err := left.Join(right, "At", "ID")
	require.Nil(t, err)
	require.Equal(t, 1, joined.NumRows())
	v, err := joined.Value(0, "Right")
	require.Nil(t, err)
	require.Equal(t, false, v)
}
