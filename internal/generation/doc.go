// Package generation defines the boundary between the application core
// and external LLM completion services. It abstracts the details of the
// hosted model APIs (OpenAI, Groq, Gemini) behind a single-operation
// client interface, allowing the application to generate email text
// without coupling to a specific external service.
package generation
