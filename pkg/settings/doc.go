// Package settings exposes the persisted path overrides read from config.ini.
//
// The file is loaded once per run and never written by this tool. Only two
// keys are consulted:
//
//	[WindowsPaths]
//	cursor_path = C:\Users\me\AppData\Local\Programs\Cursor\resources\app
//
//	[MacPaths]
//	product_json_path = /Applications/Cursor.app/Contents/Resources/app/product.json
package settings
