package config

type DBConfig struct {
	Username string
	Password string
	Host     string
	Port     string
	DBName   string
	SSLMode  string
}

type SMTPConfig struct {
	From string
	Pass string
	Host string
	Port string
}
