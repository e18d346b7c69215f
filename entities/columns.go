package entities

// Column is one of the 11 fixed ledger columns, in export order.
type Column struct {
	Key   string
	Label string
}

// Columns is the fixed schema. Order is significant and matches the
// spreadsheet header row.
var Columns = []Column{
	{"loadDate", "装车日期"},
	{"loadPlace", "装车地"},
	{"vehicle", "车辆"},
	{"model", "产品型号"},
	{"loadNetWeight", "装车净重"},
	{"unloadDate", "卸车日期"},
	{"unloadPlace", "卸货地"},
	{"unloadTons", "卸车数（吨）"},
	{"freight", "运费"},
	{"settleTons", "结算吨数"},
	{"amount", "金额"},
}

// Values returns the row's cells in column order.
func (r Row) Values() []string {
	return []string{
		r.LoadDate,
		r.LoadPlace,
		r.Vehicle,
		r.Model,
		r.LoadNetWeight,
		r.UnloadDate,
		r.UnloadPlace,
		r.UnloadTons,
		r.Freight,
		r.SettleTons,
		r.Amount,
	}
}
