// Package luabind exposes the array list to Lua scripts as the "arraylist" module.
//
//	local al = require("arraylist")
//	local l = al.new(2)
//	l:insert(1, 2, 3)
//	print(l:get(2), l:len(), l:cap()) --> 3 3 4
//
// Indices are zero-based, as everywhere else in nerdlist. Operations that fail return
// false (or nil) followed by an error message instead of raising.
//
// l:insert with several values is not atomic. Values are inserted in order and
// the first failure stops the call, leaving the values before it in the list.
package luabind

import (
	"github.com/nerdlist/nerdlist/arraylist"
	"github.com/nerdlist/nerdlist/config"
	"github.com/nerdlist/nerdlist/constant"
	lua "github.com/yuin/gopher-lua"
)

const listTypeName = constant.LuaModule + ".list"

type luaList struct {
	list arraylist.List[lua.LValue]
}

var listMethods = map[string]lua.LGFunction{
	"insert":      listInsert,
	"get":         listGet,
	"set":         listSet,
	"delete":      listDelete,
	"fast_delete": listFastDelete,
	"contains":    listContains,
	"index_of":    listIndexOf,
	"len":         listLen,
	"cap":         listCap,
	"values":      listValues,
	"destroy":     listDestroy,
}

// Preload registers the module so scripts can require it.
func Preload(L *lua.LState) {
	L.PreloadModule(constant.LuaModule, loader)
}

func loader(L *lua.LState) int {
	mt := L.NewTypeMetatable(listTypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), listMethods))
	L.SetField(mt, "__len", L.NewFunction(listLen))
	L.SetField(mt, "__tostring", L.NewFunction(listToString))

	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"new": newList,
	})
	L.SetField(mod, "default_capacity", lua.LNumber(config.InitialCapacity()))

	L.Push(mod)
	return 1
}

func fail(L *lua.LState, err error) int {
	L.Push(lua.LFalse)
	L.Push(lua.LString(err.Error()))
	return 2
}

func succeed(L *lua.LState) int {
	L.Push(lua.LTrue)
	return 1
}

// al.new([capacity]) -> list | nil, message
func newList(L *lua.LState) int {
	capacity := L.OptInt(1, config.InitialCapacity())

	ud := L.NewUserData()
	l := &luaList{}
	if err := l.list.Init(capacity, config.ListOptions()...); err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}

	ud.Value = l
	L.SetMetatable(ud, L.GetTypeMetatable(listTypeName))
	L.Push(ud)
	return 1
}

func checkList(L *lua.LState) *luaList {
	ud := L.CheckUserData(1)
	if l, ok := ud.Value.(*luaList); ok {
		return l
	}
	L.ArgError(1, "arraylist expected")
	return nil
}

// l:insert(v, ...) -> true | false, message
func listInsert(L *lua.LState) int {
	l := checkList(L)
	if L.GetTop() < 2 {
		L.ArgError(2, "value expected")
	}

	for i := 2; i <= L.GetTop(); i++ {
		if err := l.list.Insert(L.Get(i)); err != nil {
			return fail(L, err)
		}
	}
	return succeed(L)
}

// l:get(i) -> value | nil, message
func listGet(L *lua.LState) int {
	l := checkList(L)
	value, err := l.list.At(L.CheckInt(2))
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}

	L.Push(value)
	return 1
}

// l:set(i, v) -> true | false, message
func listSet(L *lua.LState) int {
	l := checkList(L)
	if err := l.list.Set(L.CheckInt(2), L.CheckAny(3)); err != nil {
		return fail(L, err)
	}
	return succeed(L)
}

// l:delete(i) -> true | false, message
func listDelete(L *lua.LState) int {
	l := checkList(L)
	if err := l.list.Delete(L.CheckInt(2)); err != nil {
		return fail(L, err)
	}
	return succeed(L)
}

// l:fast_delete(i) -> true | false, message
func listFastDelete(L *lua.LState) int {
	l := checkList(L)
	if err := l.list.FastDelete(L.CheckInt(2)); err != nil {
		return fail(L, err)
	}
	return succeed(L)
}

func listContains(L *lua.LState) int {
	l := checkList(L)
	value := L.CheckAny(2)
	L.Push(lua.LBool(l.list.ContainsFunc(value, L.Equal)))
	return 1
}

// l:index_of(v) -> index | nil
func listIndexOf(L *lua.LState) int {
	l := checkList(L)
	value := L.CheckAny(2)

	for i, v := range l.list.Snapshot() {
		if L.Equal(v, value) {
			L.Push(lua.LNumber(i))
			return 1
		}
	}

	L.Push(lua.LNil)
	return 1
}

func listLen(L *lua.LState) int {
	L.Push(lua.LNumber(checkList(L).list.Len()))
	return 1
}

func listCap(L *lua.LState) int {
	L.Push(lua.LNumber(checkList(L).list.Cap()))
	return 1
}

// l:values() -> table holding the live elements in order
func listValues(L *lua.LState) int {
	l := checkList(L)
	table := L.NewTable()
	for _, v := range l.list.Snapshot() {
		table.Append(v)
	}
	L.Push(table)
	return 1
}

func listDestroy(L *lua.LState) int {
	checkList(L).list.Destroy()
	return 0
}

func listToString(L *lua.LState) int {
	L.Push(lua.LString(checkList(L).list.String()))
	return 1
}
