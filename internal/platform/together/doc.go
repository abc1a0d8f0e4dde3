// Package together implements generation.Completer against Together's legacy
// /inference endpoint: a single JSON POST authenticated with a bearer token,
// whose reply carries the generated text at output.choices[0].text.
package together
