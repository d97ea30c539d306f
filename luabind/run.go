package luabind

import (
	"sync"

	libs "github.com/metafates/mangal-lua-libs"
	"github.com/nerdlist/nerdlist/filesystem"
	"github.com/nerdlist/nerdlist/log"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

var bytecodeCache sync.Map

// NewState returns a Lua state with the helper libraries and the arraylist module preloaded.
func NewState() *lua.LState {
	L := lua.NewState()
	libs.Preload(L)
	Preload(L)
	return L
}

func compile(path string) (*lua.FunctionProto, error) {
	if cached, exists := bytecodeCache.Load(path); exists {
		return cached.(*lua.FunctionProto), nil
	}

	file, err := filesystem.API().Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	chunk, err := parse.Parse(file, path)
	if err != nil {
		return nil, err
	}

	proto, err := lua.Compile(chunk, path)
	if err != nil {
		return nil, err
	}

	bytecodeCache.Store(path, proto)
	return proto, nil
}

// Exec runs the script at path inside L.
func Exec(L *lua.LState, path string) error {
	proto, err := compile(path)
	if err != nil {
		return err
	}

	L.Push(L.NewFunctionFromProto(proto))
	return L.PCall(0, lua.MultRet, nil)
}

// Run executes the script at path in a fresh state.
func Run(path string) error {
	L := NewState()
	defer L.Close()

	log.Infof("running lua script %s", path)
	if err := Exec(L, path); err != nil {
		log.Errorf("lua script %s: %s", path, err)
		return err
	}
	return nil
}
