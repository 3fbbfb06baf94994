package data

type ReportDecade struct {
	Decade  int     `yaml:"decade"`
	MeanAge float64 `yaml:"mean-age"`
	Count   int     `yaml:"count"`
}

type Report struct {
	Id        string         `yaml:"id"`
	File      string         `yaml:"file"`
	StartYear int            `yaml:"start-year"`
	EndYear   int            `yaml:"end-year"`
	InRange   int            `yaml:"individuals-in-range"`
	Coverage  int            `yaml:"individuals-with-dates"`
	Decades   []ReportDecade `yaml:"decades"`
}

type Config struct {
	StartYear int `yaml:"start-year"`
	EndYear   int `yaml:"end-year"`
}
