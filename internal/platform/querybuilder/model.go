package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds a single-row INSERT from the db tags of model.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	return InsertModels(table, []any{model}, suffix)
}

// InsertModels builds a multi-row INSERT. All models share one struct type
// so their columns line up.
func InsertModels(table string, models []any, suffix string) (string, []any, error) {
	if len(models) == 0 {
		return "", nil, fmt.Errorf("insert into %s needs at least one model", table)
	}

	stmt := InsertInto(table).Suffix(suffix)
	var shape reflect.Type
	for i, model := range models {
		value, err := structValue(model)
		if err != nil {
			return "", nil, fmt.Errorf("model %d: %w", i, err)
		}
		if i == 0 {
			shape = value.Type()
			stmt.Columns(dbColumns(shape)...)
		} else if value.Type() != shape {
			return "", nil, fmt.Errorf("model %d is %s, expected %s", i, value.Type(), shape)
		}
		stmt.Values(dbValues(value)...)
	}
	if len(stmt.columns) == 0 {
		return "", nil, fmt.Errorf("%s has no db columns", shape)
	}
	return stmt.ToSQL()
}

func structValue(model any) (reflect.Value, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return reflect.Value{}, fmt.Errorf("nil model")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("model is %s, expected struct", value.Kind())
	}
	return value, nil
}

// dbColumn reports the column of an exported field tagged with db.
func dbColumn(field reflect.StructField) (string, bool) {
	if !field.IsExported() {
		return "", false
	}
	name, _, _ := strings.Cut(field.Tag.Get("db"), ",")
	name = strings.TrimSpace(name)
	return name, name != "" && name != "-"
}

func dbColumns(typ reflect.Type) []string {
	var cols []string
	for i := 0; i < typ.NumField(); i++ {
		if col, ok := dbColumn(typ.Field(i)); ok {
			cols = append(cols, col)
		}
	}
	return cols
}

func dbValues(value reflect.Value) []any {
	typ := value.Type()
	var vals []any
	for i := 0; i < typ.NumField(); i++ {
		if _, ok := dbColumn(typ.Field(i)); ok {
			vals = append(vals, value.Field(i).Interface())
		}
	}
	return vals
}
