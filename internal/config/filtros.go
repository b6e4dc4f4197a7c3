package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var validCodigos = map[string]bool{
	"TFN":   true,
	"CNCAF": true,
	"CSJN":  true,
}

// Default returns the built-in keyword tables. They mirror the historical
// jurisprudence dataset: three tribunals and the five recurring topics.
func Default() *FiltrosConfig {
	return &FiltrosConfig{
		Tribunales: []TribunalRule{
			{Codigo: "TFN", Palabras: []string{"tfn", "tribunal fiscal"}},
			{Codigo: "CNCAF", Palabras: []string{"cncaf", "cámara"}},
			{Codigo: "CSJN", Palabras: []string{"csjn", "corte suprema"}},
		},
		Temas: []TemaGroup{
			{Tema: "prescripción", Raices: []string{"prescripcion", "prescripc"}},
			{Tema: "honorarios", Raices: []string{"honorario"}},
			{Tema: "infracciones", Raices: []string{"infraccion", "infrac"}},
			{Tema: "nulidad", Raices: []string{"nulidad"}},
			{Tema: "apelación", Raices: []string{"apelacion", "recurso"}},
		},
	}
}

// Load reads the keyword tables from FILTROS_CONFIG_PATH (default
// configs/filtros.yaml). A missing file is not an error: the built-in
// defaults are used.
func Load() (*FiltrosConfig, error) {
	path := os.Getenv("FILTROS_CONFIG_PATH")
	if path == "" {
		path = "configs/filtros.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	var cfg FiltrosConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *FiltrosConfig) {
	defaults := Default()
	if len(cfg.Tribunales) == 0 {
		cfg.Tribunales = defaults.Tribunales
	}
	if len(cfg.Temas) == 0 {
		cfg.Temas = defaults.Temas
	}
}

func (c *FiltrosConfig) Validate() error {
	for _, rule := range c.Tribunales {
		if !validCodigos[rule.Codigo] {
			return fmt.Errorf("unknown tribunal code %q", rule.Codigo)
		}
		if len(rule.Palabras) == 0 {
			return fmt.Errorf("tribunal %s has no keywords", rule.Codigo)
		}
	}
	for _, group := range c.Temas {
		if group.Tema == "" {
			return fmt.Errorf("tema group with empty label")
		}
		if len(group.Raices) == 0 {
			return fmt.Errorf("tema %s has no stems", group.Tema)
		}
	}
	return nil
}
