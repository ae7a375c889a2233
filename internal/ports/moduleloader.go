package ports

// ModuleLoader resolves a named precompiled kernel module to its bytes.
// An error or an empty buffer both signal the module is missing.
type ModuleLoader interface {
	Load(name string) ([]byte, error)
}
