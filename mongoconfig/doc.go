/*
Package mongoconfig provides the mongo configuration namespace.

The <mongo:mapping-converter> element declares a mapping converter and,
unless they already exist, its supporting definitions:

	<mongo:mapping-converter id="converter"
	    base-package="example.com/app/model"
	    mongo-ref="mongo"
	    mongo-template-ref="mongoTemplate">
	    <mongo:custom-converters>
	        <mongo:converter ref="moneyConverter"/>
	        <mongo:converter>
	            <bean class="convert.PointReader"/>
	        </mongo:converter>
	    </mongo:custom-converters>
	</mongo:mapping-converter>

produces

  - mappingContext: a mapping context seeded with the entity types found
    below base-package (skipped when mapping-context-ref is given)
  - mappingContextAwareBeanPostProcessor: points at the mapping context
  - indexCreationHelper: takes the mapping context and the template
  - the converter itself, under the element id or "mappingConverter"

The three auxiliary names are registered at most once per registry. A
definition already registered under one of them is kept as is, even if it
was configured differently.
*/
package mongoconfig
