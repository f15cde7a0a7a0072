package primitive

var (
	templates        map[ConversionPair][]string
	checkedTemplates map[ConversionPair][]string
)

func init() {
	templates = map[ConversionPair][]string{}
	checkedTemplates = map[ConversionPair][]string{}

	// CategoryLossless
	for kind := KindEnum(1); int(kind) < KindTotal; kind++ {
		if !kind.IsFixedWidth() {
			continue
		}

		pair := ConversionPair{kind, kind}

		templates[pair] = []string{"{{.dst}} = {{.dstType}}({{.src}})"}

		// the domain side rejects bit patterns it cannot represent
		checkedTemplates[pair] = []string{
			"{{.dst}} = {{.dstType}}({{.src}})",
			"if !{{.dst}}.IsValid() {",
			`	return 0, fmt.Errorf("{{.funcName}}: %d is not a valid value for {{.dstType}}: %w", {{.src}}, {{.invalidErr}})`,
			"}",
		}
	}
}
