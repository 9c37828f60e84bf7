package holiday

type defaultHoliday struct {
	Date string
	Name string
}

// Barcelona-area public holidays the collection is seeded with when empty.
var defaultHolidays = []defaultHoliday{
	{"2026-01-01", "Año Nuevo"},
	{"2026-01-06", "Reyes"},
	{"2026-04-03", "Viernes Santo"},
	{"2026-04-06", "Lunes de Pascua"},
	{"2026-05-01", "Fiesta del Trabajo"},
	{"2026-06-24", "San Juan"},
	{"2026-08-15", "Asunción"},
	{"2026-09-11", "Diada de Cataluña"},
	{"2026-09-24", "La Mercè"},
	{"2026-10-12", "Fiesta Nacional"},
	{"2026-11-01", "Todos los Santos"},
	{"2026-12-06", "Constitución"},
	{"2026-12-08", "Inmaculada"},
	{"2026-12-25", "Navidad"},
	{"2026-12-26", "San Esteban"},
	{"2027-01-01", "Año Nuevo"},
	{"2027-01-06", "Reyes"},
	{"2027-03-26", "Viernes Santo"},
	{"2027-03-29", "Lunes de Pascua"},
	{"2027-05-01", "Fiesta del Trabajo"},
	{"2027-06-24", "San Juan"},
	{"2027-08-15", "Asunción"},
	{"2027-09-11", "Diada de Cataluña"},
	{"2027-09-24", "La Mercè"},
	{"2027-10-12", "Fiesta Nacional"},
	{"2027-11-01", "Todos los Santos"},
	{"2027-12-06", "Constitución"},
	{"2027-12-08", "Inmaculada"},
	{"2027-12-25", "Navidad"},
	{"2027-12-26", "San Esteban"},
}
