// Package tokens counts LLM context tokens in strings and files.
//
// Counter wraps the tiktoken encoding for a concrete model name;
// Estimator is the zero-dependency fallback heuristic. Both satisfy
// TokenCounter, which is what the directory report in CountFiles takes,
// so callers pick accuracy or speed per call site. ContextLimit maps
// model names to context window sizes for budget arithmetic.
package tokens
