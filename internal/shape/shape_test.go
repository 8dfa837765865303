package shape

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-extender/internal/accessor"
	"property-extender/options"
	"property-extender/property"
)

type Person struct {
	Name string
	Fun  bool
}

func set(t *testing.T, props ...property.Property) *property.Set {
	t.Helper()

	s, err := property.Normalize(props...)
	require.NoError(t, err)

	return s
}

func resolverOf(values map[string]any) ResolveFunc {
	return func(name string) (any, bool, error) {
		v, ok := values[name]
		return v, ok, nil
	}
}

func TestFor_Fields(t *testing.T) {
	type fieldsPerson Person

	tbl := accessor.For(reflect.TypeFor[fieldsPerson](), options.SurfaceDefault)
	s := For(tbl, set(t,
		property.MustNew("age", 50),
		property.MustNew("fun", false),
		property.MustNew("name", func(p fieldsPerson) int { return len(p.Name) }),
		property.MustNew("middle_name", "x"),
	))

	fields := s.Fields()
	require.Len(t, fields, 4)

	iface := reflect.TypeFor[any]()

	assert.Equal(t, Field{Property: "name", GoName: "Name", Type: iface, Extra: true, Override: true}, fields[0])
	assert.Equal(t, Field{Property: "fun", GoName: "Fun", Type: iface, Extra: true, Override: true}, fields[1])
	assert.Equal(t, Field{Property: "age", GoName: "Age", Type: iface, Extra: true}, fields[2])
	assert.Equal(t, Field{Property: "middle_name", GoName: "MiddleName", Type: iface, Extra: true}, fields[3])

	require.Equal(t, reflect.Struct, s.Type.Kind())
	require.Equal(t, 4, s.Type.NumField())

	age := s.Type.Field(2)
	assert.Equal(t, "Age", age.Name)
	assert.Equal(t, "age", age.Tag.Get("json"))
	assert.Equal(t, "age", age.Tag.Get("yaml"))
	assert.Equal(t, "extra", age.Tag.Get("extend"))
	assert.Equal(t, "middle_name", s.Type.Field(3).Tag.Get("json"))
}

func TestFor_SourceFieldsKeepTheirTypes(t *testing.T) {
	type typedPerson Person

	tbl := accessor.For(reflect.TypeFor[typedPerson](), options.SurfaceDefault)
	s := For(tbl, set(t, property.MustNew("age", 50)))

	fields := s.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, Field{Property: "name", GoName: "Name", Type: reflect.TypeFor[string]()}, fields[0])
	assert.Equal(t, Field{Property: "fun", GoName: "Fun", Type: reflect.TypeFor[bool]()}, fields[1])
	assert.Empty(t, s.Type.Field(0).Tag.Get("extend"))
}

func TestFor_OverrideOnlyNameSetsHaveDistinctTypes(t *testing.T) {
	type overridePerson Person

	tbl := accessor.For(reflect.TypeFor[overridePerson](), options.SurfaceDefault)

	byName := For(tbl, set(t, property.MustNew("name", "x")))
	byFun := For(tbl, set(t, property.MustNew("fun", false)))
	both := For(tbl, set(t, property.MustNew("name", "x"), property.MustNew("fun", false)))

	assert.NotEqual(t, byName.Type, byFun.Type)
	assert.NotEqual(t, byName.Type, both.Type)
	assert.False(t, byName.Type.AssignableTo(byFun.Type))
	assert.False(t, byFun.Type.AssignableTo(both.Type))
}

func TestFor_ValueTypesDoNotChangeTheShape(t *testing.T) {
	type valuesPerson Person

	tbl := accessor.For(reflect.TypeFor[valuesPerson](), options.SurfaceDefault)

	ints := For(tbl, set(t, property.MustNew("label", 7)))
	strs := For(tbl, set(t, property.MustNew("label", "seven")))
	require.Same(t, ints, strs)

	for _, value := range []any{7, "seven", 49.9} {
		v, err := strs.Build(resolverOf(map[string]any{"label": value}))
		require.NoError(t, err)
		assert.Equal(t, value, reflect.ValueOf(v).Elem().FieldByName("Label").Interface())
	}
}

func TestFor_SameNamesShareType(t *testing.T) {
	type sharedPerson Person

	tbl := accessor.For(reflect.TypeFor[sharedPerson](), options.SurfaceDefault)

	a := For(tbl, set(t, property.MustNew("age", 50), property.MustNew("bool", true)))
	b := For(tbl, set(t, property.MustNew("bool", false), property.MustNew("age", 45)))
	c := For(tbl, set(t, property.MustNew("age", 50), property.MustNew("middleName", "")))

	assert.Same(t, a, b)
	assert.Equal(t, a.Type, b.Type)
	assert.NotEqual(t, a.Type, c.Type)
	assert.False(t, c.Type.AssignableTo(a.Type))
}

func TestFor_SurfaceIsPartOfKey(t *testing.T) {
	type surfacePerson Person

	typ := reflect.TypeFor[surfacePerson]()
	extras := set(t, property.MustNew("age", 50))

	a := For(accessor.For(typ, options.SurfaceDefault), extras)
	b := For(accessor.For(typ, options.SurfaceNone), extras)

	assert.NotEqual(t, a.Type, b.Type)
	assert.Equal(t, 1, b.Type.NumField())
}

func TestFor_GoNameCollisions(t *testing.T) {
	type collidePerson struct{}

	tbl := accessor.For(reflect.TypeFor[collidePerson](), options.SurfaceDefault)
	s := For(tbl, set(t,
		property.MustNew("middleName", "a"),
		property.MustNew("middle_name", "b"),
		property.MustNew("middle-name", "c"),
	))

	fields := s.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "MiddleName", fields[0].GoName)
	assert.Equal(t, "MiddleName2", fields[1].GoName)
	assert.Equal(t, "MiddleName3", fields[2].GoName)
}

func TestBuild(t *testing.T) {
	type buildPerson Person

	tbl := accessor.For(reflect.TypeFor[buildPerson](), options.SurfaceDefault)
	s := For(tbl, set(t, property.MustNew("age", 50), property.MustNew("score", 1.5)))

	v, err := s.Build(resolverOf(map[string]any{
		"name":  "moe",
		"fun":   true,
		"age":   int32(45),
		"score": nil,
	}))
	require.NoError(t, err)

	rv := reflect.ValueOf(v)
	require.Equal(t, reflect.Pointer, rv.Kind())
	require.Equal(t, s.Type, rv.Elem().Type())

	assert.Equal(t, "moe", rv.Elem().FieldByName("Name").Interface())
	assert.Equal(t, true, rv.Elem().FieldByName("Fun").Interface())
	assert.Equal(t, int32(45), rv.Elem().FieldByName("Age").Interface())
	assert.Nil(t, rv.Elem().FieldByName("Score").Interface())
}

func TestBuild_FreshValueEachTime(t *testing.T) {
	type freshPerson Person

	tbl := accessor.For(reflect.TypeFor[freshPerson](), options.SurfaceDefault)
	s := For(tbl, set(t, property.MustNew("age", 50)))
	resolve := resolverOf(map[string]any{"age": 50})

	first, err := s.Build(resolve)
	require.NoError(t, err)

	reflect.ValueOf(first).Elem().FieldByName("Age").Set(reflect.ValueOf(45))

	second, err := s.Build(resolve)
	require.NoError(t, err)
	assert.Equal(t, 50, reflect.ValueOf(second).Elem().FieldByName("Age").Interface())
}

func TestBuild_Mismatch(t *testing.T) {
	type mismatchPerson Person

	tbl := accessor.For(reflect.TypeFor[mismatchPerson](), options.SurfaceDefault)
	s := For(tbl, set(t, property.MustNew("age", 50)))

	_, err := s.Build(resolverOf(map[string]any{"name": 65}))
	require.ErrorIs(t, err, ErrFieldMismatch)
	assert.Contains(t, err.Error(), `"name"`)
}

func TestBuild_ResolveError(t *testing.T) {
	type errPerson Person

	boom := errors.New("boom")
	tbl := accessor.For(reflect.TypeFor[errPerson](), options.SurfaceDefault)
	s := For(tbl, set(t, property.MustNew("age", 50)))

	_, err := s.Build(func(name string) (any, bool, error) {
		if name == "age" {
			return nil, false, boom
		}

		return nil, false, nil
	})
	assert.Same(t, boom, err)
}

func TestAssign(t *testing.T) {
	type label string

	var (
		i     int
		s     string
		l     label
		iface any
	)

	assert.True(t, assign(reflect.ValueOf(&i).Elem(), reflect.ValueOf(3)))
	assert.Equal(t, 3, i)

	assert.True(t, assign(reflect.ValueOf(&iface).Elem(), reflect.ValueOf([]int{1})))
	assert.Equal(t, []int{1}, iface)

	assert.False(t, assign(reflect.ValueOf(&i).Elem(), reflect.ValueOf(49.9)))
	assert.Equal(t, 3, i)

	assert.False(t, assign(reflect.ValueOf(&i).Elem(), reflect.ValueOf(int64(1)<<40)))
	assert.False(t, assign(reflect.ValueOf(&l).Elem(), reflect.ValueOf("x")))
	assert.False(t, assign(reflect.ValueOf(&s).Elem(), reflect.ValueOf(65)))
	assert.Empty(t, s)
}
