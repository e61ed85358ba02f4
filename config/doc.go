// Package config holds the settings of a sheet mapping operation and loads
// them from YAML.
//
// A config file looks like:
//
//	format: xlsx
//	sheet: People
//	matching_threshold: 80
//	column_size_coefficient: 280
//	headers:
//	  Name: Full Name
//	  Email: e-mail
//	style_header: true
//	csv_delimiter: ";"
package config
