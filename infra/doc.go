// Package infra contains technical adapters such as the OpenAI
// extraction client, the PDF splitter and metrics exporters. These
// packages should depend only on the interfaces defined in the core
// packages.
package infra
