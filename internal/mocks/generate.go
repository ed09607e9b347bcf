package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name PointRepository --dir ../domain/fantasy --output domain/fantasy --outpkg fantasymock --filename point_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name UserRepository --dir ../domain/fantasy --output domain/fantasy --outpkg fantasymock --filename user_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name MatchStatRepository --dir ../domain/fantasy --output domain/fantasy --outpkg fantasymock --filename match_stat_repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/note --output domain/note --outpkg notemock --filename repository_mock.go
