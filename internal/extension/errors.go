package extension

import "fmt"

// MetadataError reports a malformed metadata packet, such as a packet with
// no 'module' field.
type MetadataError struct {
	Reason string
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("invalid extension metadata: %s", e.Reason)
}

// ModuleNotFoundError reports a name that does not resolve to a registered
// module or extension package.
type ModuleNotFoundError struct {
	Name string
}

func (e *ModuleNotFoundError) Error() string {
	return fmt.Sprintf("the module %q could not be found; is the extension registered?", e.Name)
}

// LoaderNotFoundError reports an extension point with no load hook. Unlike
// the link hook, the load hook is mandatory.
type LoaderNotFoundError struct {
	Point  string
	Module string
}

func (e *LoaderNotFoundError) Error() string {
	return fmt.Sprintf("extension point %q: module %q defines no load hook and no app", e.Point, e.Module)
}
