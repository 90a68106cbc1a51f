// Package config stores user settings in Fyne preferences and turns them
// into download options.
package config
