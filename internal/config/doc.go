// Package config loads and validates restlight.json, the optional
// file configuring the serve command. The core dispatcher has no
// configuration surface of its own; everything here concerns the
// transport wrapper (listen address, pretty rendering, metrics
// exposition).
package config
