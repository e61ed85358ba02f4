// Package workbook is the spreadsheet backend of the sheet mapper.
//
// It opens and creates workbooks, hands out sheets, iterates rows as cell
// text and writes rows, column widths and header styling. xlsx and xlsm
// workbooks go through excelize; csv files are a single-sheet workbook held
// in memory.
package workbook
