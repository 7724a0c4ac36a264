package valido_test

import (
	"testing"

	"github.com/go-sif/valido"
	"github.com/go-sif/valido/errors"
	"github.com/stretchr/testify/require"
)

func TestCheckAllColumnsStrict(t *testing.T) {
	df := createExtendedDataFrame(t)
	require.Nil(t, valido.Check(df, valido.Names(df.ColumnNames()), true))
}

func TestCheckMissingColumnStrict(t *testing.T) {
	df := createBasicDataFrame(t)
	err := valido.Check(df, valido.Names{"Brand", "Price", "X"}, true)
	require.Equal(t, errors.MissingColumnError{Name: "X", Columns: []string{"Brand", "Price"}}, err)
	require.EqualError(t, err, "Column X missing from DataFrame. Got columns: ['Brand', 'Price']")
}

func TestCheckSubset(t *testing.T) {
	df := createExtendedDataFrame(t)
	require.Nil(t, valido.Check(df, valido.Names{"Price"}, false))

	err := valido.Check(df, valido.Names{"Price"}, true)
	require.Equal(t, errors.UnexpectedColumnsError{Names: []string{"Brand", "Year"}}, err)
	require.EqualError(t, err, "DataFrame contained unexpected column(s): Brand, Year")
}

func TestCheckFirstViolationOnly(t *testing.T) {
	df := createBasicDataFrame(t)
	err := valido.Check(df, valido.Names{"Foo", "Bar"}, true)
	require.Equal(t, errors.MissingColumnError{Name: "Foo", Columns: []string{"Brand", "Price"}}, err)
}

func TestCheckDtypes(t *testing.T) {
	df := createBasicDataFrame(t)
	require.Nil(t, valido.Check(df, valido.DtypeMap(map[string]string{"Brand": "string", "Price": "int"}), true))
}

func TestCheckDtypeMismatch(t *testing.T) {
	df := createBasicDataFrame(t)
	err := valido.Check(df, valido.DtypeMap(map[string]string{"Price": "float"}), false)
	require.Equal(t, errors.DtypeMismatchError{Name: "Price", Actual: "int", Expected: "float"}, err)
	require.EqualError(t, err, "Column Price has wrong dtype. Was int, expected float")
}

func TestCheckDtypeIsCaseSensitive(t *testing.T) {
	df := createBasicDataFrame(t)
	err := valido.Check(df, valido.Dtypes{{Name: "Brand", Dtype: "String"}}, false)
	require.Equal(t, errors.DtypeMismatchError{Name: "Brand", Actual: "string", Expected: "String"}, err)
}

func TestCheckDtypesMissingColumn(t *testing.T) {
	df := createBasicDataFrame(t)
	err := valido.Check(df, valido.Dtypes{{Name: "Year", Dtype: "int"}}, false)
	require.Equal(t, errors.MissingColumnError{Name: "Year", Columns: []string{"Brand", "Price"}}, err)
}

func TestCheckDtypesStrict(t *testing.T) {
	df := createExtendedDataFrame(t)
	err := valido.Check(df, valido.Dtypes{{Name: "Brand", Dtype: "string"}}, true)
	require.Equal(t, errors.UnexpectedColumnsError{Names: []string{"Price", "Year"}}, err)
}

func TestDtypeMapOrder(t *testing.T) {
	dtypes := valido.DtypeMap(map[string]string{"b": "int", "a": "string", "c": "double"})
	require.Equal(t, valido.Dtypes{
		{Name: "a", Dtype: "string"},
		{Name: "b", Dtype: "int"},
		{Name: "c", Dtype: "double"},
	}, dtypes)
}

func TestEmptyContract(t *testing.T) {
	df := createBasicDataFrame(t)
	require.True(t, valido.Contract{Strict: true}.IsEmpty())
	require.Nil(t, valido.Contract{Strict: true}.Check(df))
	require.Nil(t, valido.Contract{Columns: valido.Names{}, Strict: true}.Check(df))
	require.NotNil(t, valido.Contract{Columns: valido.Names{"Brand"}, Strict: true}.Check(df))
}
