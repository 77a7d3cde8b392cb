/*

Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

This package allows to load configuration from a genesis file and update it at
runtime through a patch message, authenticated by the configuration owner.

*/
package gconf
