package anilist

// Node fragments stop one hop deep. Nested nodes never carry their own
// connections, matching the disaggregation depth the resolvers expect.
const mediaNodeFragment = `
fragment mediaNode on Media {
  id
  type
  format
  popularity
  title {
    english
    romaji
    native
  }
  coverImage {
    extraLarge
    color
  }
}
`

const characterNodeFragment = `
fragment characterNode on Character {
  id
  age
  gender
  name {
    full
    native
    alternative
  }
  image {
    large
  }
}
`

const mediaFragment = mediaNodeFragment + characterNodeFragment + `
fragment media on Media {
  ...mediaNode
  description
  synonyms
  relations {
    edges {
      relationType(version: 2)
      node {
        ...mediaNode
      }
    }
  }
  characters(sort: [RELEVANCE], perPage: 25) {
    edges {
      role
      node {
        ...characterNode
      }
    }
  }
}
`

const characterFragment = characterNodeFragment + mediaNodeFragment + `
fragment character on Character {
  ...characterNode
  description
  media(sort: POPULARITY_DESC) {
    edges {
      characterRole
      node {
        ...mediaNode
      }
    }
  }
}
`

const mediaByIDsQuery = mediaFragment + `
query ($ids: [Int], $perPage: Int) {
  Page(page: 1, perPage: $perPage) {
    media(id_in: $ids) {
      ...media
    }
  }
}
`

const charactersByIDsQuery = characterFragment + `
query ($ids: [Int], $perPage: Int) {
  Page(page: 1, perPage: $perPage) {
    characters(id_in: $ids) {
      ...character
    }
  }
}
`

const searchMediaQuery = mediaFragment + `
query ($search: String, $perPage: Int) {
  Page(page: 1, perPage: $perPage) {
    media(search: $search, sort: [POPULARITY_DESC], isAdult: false) {
      ...media
    }
  }
}
`

const searchCharactersQuery = characterFragment + `
query ($search: String, $perPage: Int) {
  Page(page: 1, perPage: $perPage) {
    characters(search: $search, sort: [SEARCH_MATCH]) {
      ...character
    }
  }
}
`

const mediaCharactersQuery = mediaNodeFragment + characterNodeFragment + `
query ($id: Int, $page: Int) {
  Media(id: $id) {
    ...mediaNode
    cast: characters(sort: [RELEVANCE], page: $page, perPage: 1) {
      pageInfo {
        total
        hasNextPage
      }
      edges {
        role
        node {
          ...characterNode
        }
      }
    }
  }
}
`
