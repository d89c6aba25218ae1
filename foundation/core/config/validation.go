// File: validation.go
// Title: Configuration Validation Implementation
// Description: Checks configuration values against per-key rules: presence,
//              type, allowed values and patterns.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-15 v0.2.0: Allowed-value sets, env overrides validated, single error

package config

import (
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/layerdeck/foundation/core/error"
)

// ValidationRule defines validation criteria for one key
type ValidationRule struct {
	Required bool     // Whether the key must be present
	Type     string   // Expected type: "string", "int" or "bool"
	OneOf    []string // Allowed values, compared case-insensitively
	Pattern  string   // Regex the string form must match
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// Validate checks every rule and reports all violations in one error
func (c *Config) Validate(rules ValidationRules) error {
	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var problems []string
	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			problems = append(problems, err.Error())
		}
	}
	if len(problems) == 0 {
		return nil
	}

	err := mdwerror.Newf("invalid configuration: %s", strings.Join(problems, "; ")).
		WithCode(mdwerror.CodeConfigError).
		WithOperation("config.Validate").
		WithDetail("problems", problems)
	if c.filePath != "" {
		err = err.WithDetail("filePath", c.filePath)
	}
	return err
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	_, fromEnv := c.getEnvValue(key)
	if !fromEnv && !c.Has(key) {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	str := c.GetString(key)
	switch rule.Type {
	case "", "string":
	case "int":
		if _, err := strconv.Atoi(str); err != nil {
			return fmt.Errorf("field '%s' must be an integer, got '%s'", key, str)
		}
	case "bool":
		if _, err := strconv.ParseBool(str); err != nil {
			return fmt.Errorf("field '%s' must be a boolean, got '%s'", key, str)
		}
	default:
		return fmt.Errorf("unknown validation type: %s", rule.Type)
	}

	if len(rule.OneOf) > 0 {
		if !slices.ContainsFunc(rule.OneOf, func(v string) bool { return strings.EqualFold(v, str) }) {
			return fmt.Errorf("field '%s' must be one of %s, got '%s'", key, strings.Join(rule.OneOf, "|"), str)
		}
	}

	if rule.Pattern != "" {
		regex, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return fmt.Errorf("invalid regex pattern for field '%s': %w", key, err)
		}
		if !regex.MatchString(str) {
			return fmt.Errorf("field '%s' value '%s' does not match pattern '%s'", key, str, rule.Pattern)
		}
	}
	return nil
}
