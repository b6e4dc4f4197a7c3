package config

// FiltrosConfig holds the keyword tables driving tribunal and topic
// extraction. Both lists are evaluated in declaration order and the first
// matching entry wins, so the order in the YAML file is significant.
type FiltrosConfig struct {
	Tribunales []TribunalRule `yaml:"tribunales"`
	Temas      []TemaGroup    `yaml:"temas"`
}

// TribunalRule maps trigger keywords to one tribunal code.
type TribunalRule struct {
	Codigo   string   `yaml:"codigo"`
	Palabras []string `yaml:"palabras"`
}

// TemaGroup maps keyword stems to one topic label. Stems match as substrings
// of the lower-cased query, not as whole words.
type TemaGroup struct {
	Tema   string   `yaml:"tema"`
	Raices []string `yaml:"raices"`
}
