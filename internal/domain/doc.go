// Package domain contains the core model for ryujin: the service catalog, the
// persisted selection, question answers and the render context.
//
// The domain does not read files, prompt users or execute templates. Infra and
// usecase packages map into/from these types.
package domain
