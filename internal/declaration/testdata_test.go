package declaration

// Equivalent declarations in every supported format.
const (
	sampleLua = `
command("Format", ":call Format()", "Format buffer")
leader("<space>", function(p)
  p.normal("w", ":w<CR>", "Write")
  p.prefix("g", { name = "Git", desc = "Git commands" }, function(g)
    g.normal("s", ":Git<CR>", "Status")
    g.visual("b", ":Git blame<CR>", { desc = "Blame", filetype = "go" })
  end)
end)
normal("Q", "<nop>", "Disable ex mode")
visual("Q", "<nop>", "Disable ex mode")
`

	sampleYAML = `
commands:
  - name: Format
    action: ":call Format()"
    desc: Format buffer
leader:
  key: "<space>"
  mappings:
    - key: w
      normal: ":w<CR>"
      desc: Write
    - key: g
      prefix: Git
      desc: Git commands
      mappings:
        - key: s
          normal: ":Git<CR>"
          desc: Status
        - key: b
          visual: ":Git blame<CR>"
          desc: Blame
          filetype: go
mappings:
  - key: Q
    normal: "<nop>"
    visual: "<nop>"
    desc: Disable ex mode
`

	sampleTOML = `
[[commands]]
name = "Format"
action = ":call Format()"
desc = "Format buffer"

[leader]
key = "<space>"

[[leader.mappings]]
key = "w"
normal = ":w<CR>"
desc = "Write"

[[leader.mappings]]
key = "g"
prefix = "Git"
desc = "Git commands"

[[leader.mappings.mappings]]
key = "s"
normal = ":Git<CR>"
desc = "Status"

[[leader.mappings.mappings]]
key = "b"
visual = ":Git blame<CR>"
desc = "Blame"
filetype = "go"

[[mappings]]
key = "Q"
normal = "<nop>"
visual = "<nop>"
desc = "Disable ex mode"
`

	sampleJSON = `{
  "commands": [
    {"name": "Format", "action": ":call Format()", "desc": "Format buffer"}
  ],
  "leader": {
    "key": "<space>",
    "mappings": [
      {"key": "w", "normal": ":w<CR>", "desc": "Write"},
      {"key": "g", "prefix": "Git", "desc": "Git commands", "mappings": [
        {"key": "s", "normal": ":Git<CR>", "desc": "Status"},
        {"key": "b", "visual": ":Git blame<CR>", "desc": "Blame", "filetype": "go"}
      ]}
    ]
  },
  "mappings": [
    {"key": "Q", "normal": "<nop>", "visual": "<nop>", "desc": "Disable ex mode"}
  ]
}`
)
