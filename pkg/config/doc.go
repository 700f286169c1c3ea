// Package config loads the two documents that describe a plot request.
//
// The configuration document names the plot type, where to write output,
// the task id used to name files, the parameters document, and optionally
// the input data file:
//
//	{
//	  "plotType": "volcano_plot",
//	  "outputDir": "/tmp/out",
//	  "taskId": "t1",
//	  "parametersFile": "params.json",
//	  "dataPath": "deg.tsv"
//	}
//
// The parameters document holds a list of parameterId/value records plus
// any number of other fields, which are carried through untouched:
//
//	{"parameters": [{"parameterId": "pointSize", "value": 10}]}
//
// Both documents may be written as JSON, TOML (.toml) or YAML (.yaml, .yml).
// The format is chosen from the file extension.
package config
