package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder генерирует запросы с плейсхолдерами PostgreSQL ($1, $2, ...)
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}
