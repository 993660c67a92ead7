package defs

// Output file names produced by the template catalog.
const (
	// PackageJSON is the npm package descriptor.
	PackageJSON = "package.json"

	// License is the MIT license file, omitted for private packages.
	License = "LICENSE"

	// EditorConfig is the editor configuration file.
	EditorConfig = ".editorconfig"

	// GitIgnore is the version-control ignore file.
	GitIgnore = ".gitignore"

	// ViteConfigJS is the Vite build config, generated with the vue feature.
	ViteConfigJS = "vite.config.js"

	// TSConfigJSON is the TypeScript compiler config, generated with the typescript feature.
	TSConfigJSON = "tsconfig.json"
)

// Environment variables consulted by the config resolver.
const (
	EnvAuthor  = "INIT_NODEJS_PROJECT_AUTHOR"
	EnvVersion = "INIT_NODEJS_PROJECT_VERSION"
)

// AppName is the binary name and the config directory name.
const AppName = "init-nodejs-project"

// ConfigYAML is the user defaults file under the config directory.
const ConfigYAML = "config.yaml"
