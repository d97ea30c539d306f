// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// LuaModule is the name under which the list bindings are preloaded into every Lua state.
const LuaModule = "arraylist"

// ScriptTemplate is a Go text/template for scaffolding new Lua list scripts.
const ScriptTemplate = `{{ $divider := repeat "-" (plus (max (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}

local {{ .Module }} = require("{{ .Module }}")

-- Lists start with a fixed capacity and double when full.
local list = {{ .Module }}.new({{ .Capacity }})

for i = 1, 10 do
	assert(list:insert(i))
end

print("len", list:len(), "cap", list:cap())

-- Failed operations return false and a message.
local ok, err = list:set(list:len(), 0)
if not ok then
	print(err)
end

list:delete(0)
list:fast_delete(0)
print(table.concat(list:values(), ", "))

list:destroy()

-- ex: ts=4 sw=4 et filetype=lua
`
