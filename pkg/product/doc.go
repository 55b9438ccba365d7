// Package product locates the product.json descriptor of a local Cursor installation.
//
// Each supported platform has a path strategy selected once by platform
// identifier:
//
//   - windows: %LOCALAPPDATA%\Programs\Cursor\resources\app\product.json,
//     directory replaceable by WindowsPaths.cursor_path
//   - darwin: /Applications/Cursor.app/Contents/Resources/app/product.json,
//     replaceable by MacPaths.product_json_path
//   - linux: first existing of the package locations and an extracted AppImage
//
// Any other platform fails with ErrCodeOSNotSupported. The chosen path is
// always checked for existence before Resolve returns it.
//
//	r := product.NewResolver(product.WithSettings(s))
//	path, err := r.Resolve()
package product
