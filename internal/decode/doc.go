// Package decode bridges parsed YAML document values and native Go data.
// It converts document values into cty values, binds them onto Go structs
// using reflection, and renders them as JSON. All scalar and collection
// conversions route through the cty type system so they follow one set
// of coercion rules.
package decode
